package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xyproto/micro"
)

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:           "micro [file]",
	Short:         "A minimal terminal text editor",
	Long:          `micro is a small text editor that runs in the terminal. Ctrl-S saves, Ctrl-Q quits and Ctrl-F searches.`,
	Version:       micro.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "read settings from this YAML file")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write a debug log to this file")
}

func run(args []string) error {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer logFile.Close()
		logger.SetOutput(logFile)
	}
	logger.Println("micro starting")

	cfg := micro.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = micro.LoadConfig(configPath); err != nil {
			return err
		}
	}

	e, err := micro.New(cfg, logger)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := e.Open(args[0]); err != nil {
			return err
		}
	}
	if err := e.Run(); err != nil {
		logger.Printf("exiting with error: %v", err)
		return err
	}
	logger.Println("micro stopped cleanly")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "micro: %s\n", err)
		os.Exit(1)
	}
}
