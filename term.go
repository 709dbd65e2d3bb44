package micro

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal switches a tty in and out of raw mode.
type Terminal struct {
	mu          sync.Mutex
	fd          int
	origTermios unix.Termios
	rawmode     bool
}

// NewTerminal returns a Terminal controlling f, which is normally os.Stdin.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// Enter saves the current terminal attributes and puts the terminal in raw
// mode: no echo, no line buffering, no signals, no input or output
// translation, and reads that return after 100ms even without input.
func (t *Terminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rawmode {
		return nil
	}
	if !term.IsTerminal(t.fd) {
		return errors.New("not a tty")
	}
	orig, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}
	t.origTermios = *orig

	raw := *orig
	// Input modes
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output modes
	raw.Oflag &^= unix.OPOST
	// Control modes
	raw.Cflag |= unix.CS8
	// Local modes
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Control chars
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.rawmode = true
	return nil
}

// Exit restores the attributes saved by Enter. It is safe to call more than
// once, including from several goroutines.
func (t *Terminal) Exit() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.rawmode {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.origTermios); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.rawmode = false
	return nil
}

func isTimeout(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) || errors.Is(err, os.ErrDeadlineExceeded)
}
