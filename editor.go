// Package micro is a minimal terminal text editor in the spirit of kilo.
// It puts the terminal in raw mode, decodes keys itself and emits VT100
// escape sequences directly, without depending on curses.
package micro

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// Version is shown in the welcome banner.
const Version = "0.0.1"

// Editor holds the complete state of one editing session.
type Editor struct {
	cx, cy     int // cursor in file coordinates
	rx         int // cursor column in rendered coordinates
	rowoff     int
	coloff     int
	screenrows int
	screencols int
	buf        *Buffer
	dirty      int
	filename   string
	statusmsg  string
	statustime time.Time
	quitTimes  int

	cfg     Config
	keys    *KeyReader
	in      io.Reader
	out     io.Writer
	term    *Terminal
	sizeFd  int
	resized atomic.Bool
	logger  *log.Logger
	now     func() time.Time
}

// New creates an editor attached to the process' terminal. The terminal is
// not touched until Run is called.
func New(cfg Config, logger *log.Logger) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := newTTYEditor(cfg, os.Stdin, os.Stdout)
	if logger != nil {
		e.logger = logger
	}
	return e, nil
}

// newTTYEditor creates an editor that reads keys from the tty in, draws to
// out and queries the window size on out.
func newTTYEditor(cfg Config, in, out *os.File) *Editor {
	e := newEditor(cfg, in, out)
	e.term = NewTerminal(in)
	e.sizeFd = int(out.Fd())
	return e
}

// newEditor creates an editor reading keys from in and drawing to out.
// The screen size must be set before the first refresh.
func newEditor(cfg Config, in io.Reader, out io.Writer) *Editor {
	return &Editor{
		buf:       NewBuffer(cfg.TabStop),
		quitTimes: cfg.QuitTimes,
		cfg:       cfg,
		keys:      NewKeyReader(in),
		in:        in,
		out:       out,
		sizeFd:    -1,
		logger:    log.New(io.Discard, "", 0),
		now:       time.Now,
	}
}

// Filename returns the name of the file being edited, or "" for a new
// buffer.
func (e *Editor) Filename() string { return e.filename }

// Dirty reports the number of changes since the last load or save.
func (e *Editor) Dirty() int { return e.dirty }

// Buffer returns the document being edited.
func (e *Editor) Buffer() *Buffer { return e.buf }

func (e *Editor) setScreenSize(rows, cols int) {
	e.screenrows = rows - 2 // room for the status and message bars
	if e.screenrows < 1 {
		e.screenrows = 1
	}
	e.screencols = cols
}

func (e *Editor) updateWindowSize() error {
	rows, cols, err := getWindowSize(e.sizeFd, e.in, e.out)
	if err != nil {
		return err
	}
	e.setScreenSize(rows, cols)
	e.logger.Printf("window size %dx%d", cols, rows)
	return nil
}

func (e *Editor) clearScreen() {
	io.WriteString(e.out, "\x1b[2J\x1b[H")
}

// Run enables raw mode, switches to the alternate screen buffer and
// processes keys until the user quits. The terminal is restored on return,
// on SIGTERM and on SIGHUP.
func (e *Editor) Run() (err error) {
	if err := e.term.Enter(); err != nil {
		return err
	}
	io.WriteString(e.out, "\x1b[?1049h")

	var (
		once       sync.Once
		cleanupErr error
	)
	cleanup := func() error {
		once.Do(func() {
			e.clearScreen()
			io.WriteString(e.out, "\x1b[?1049l")
			cleanupErr = e.term.Exit()
		})
		return cleanupErr
	}
	defer func() {
		if rerr := cleanup(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := e.updateWindowSize(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, unix.SIGWINCH, unix.SIGTERM, unix.SIGHUP)
	defer func() {
		signal.Stop(sigCh)
		close(done)
	}()
	go e.handleSignals(sigCh, done, cleanup)

	e.setStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	for {
		if err := e.refresh(); err != nil {
			return err
		}
		quit, err := e.processKeypress()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleSignals marks the window size stale on SIGWINCH and restores the
// terminal before exiting on any other signal. It returns once done is
// closed.
func (e *Editor) handleSignals(sigCh <-chan os.Signal, done <-chan struct{}, cleanup func() error) {
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			if sig == unix.SIGWINCH {
				e.resized.Store(true)
				continue
			}
			e.logger.Printf("caught %v, restoring terminal", sig)
			cleanup()
			os.Exit(1)
		}
	}
}

// processKeypress reads one key and acts on it. It returns true when the
// editor should exit.
func (e *Editor) processKeypress() (bool, error) {
	c, err := e.keys.ReadKey()
	if err != nil {
		return false, fmt.Errorf("read: %w", err)
	}
	switch c {
	case keyEnter:
		e.insertNewline()
	case ctrlQ:
		if e.dirty > 0 {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.setStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return false, nil
			}
		}
		return true, nil
	case ctrlS:
		if err := e.save(); err != nil {
			return false, err
		}
	case ctrlF:
		if err := e.find(); err != nil {
			return false, err
		}
	case ctrlA, homeKey:
		e.cx = 0
	case ctrlE, endKey:
		if row := e.buf.Row(e.cy); row != nil {
			e.cx = row.Len()
		}
	case keyBackspace, ctrlH, delKey:
		if c == delKey {
			e.moveCursor(arrowRight)
		}
		e.delChar()
	case pageUp, pageDown:
		dir := arrowUp
		if c == pageUp {
			e.cy = e.rowoff
		} else {
			dir = arrowDown
			e.cy = min(e.rowoff+e.screenrows-1, e.buf.NumRows())
		}
		for i := 0; i < e.screenrows; i++ {
			e.moveCursor(dir)
		}
	case arrowUp, arrowDown, arrowLeft, arrowRight:
		e.moveCursor(c)
	case ctrlC, ctrlD, ctrlL, keyEsc:
		// Nothing
	default:
		if !c.IsSpecial() {
			e.insertChar(byte(c))
		}
	}
	e.quitTimes = e.cfg.QuitTimes
	return false, nil
}

// setStatusMessage sets the message shown below the status bar.
func (e *Editor) setStatusMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > statusMsgLen-1 {
		msg = msg[:statusMsgLen-1]
	}
	e.statusmsg = msg
	e.statustime = e.now()
}
