package micro

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"
)

var errNoCursorReport = errors.New("no cursor position report")

// getWindowSize returns the size of the terminal on fd. When the size can
// not be queried directly, the cursor is pushed to the bottom right corner
// and the terminal is asked where it ended up. The fallback only works in
// raw mode.
func getWindowSize(fd int, r io.Reader, w io.Writer) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	if _, werr := io.WriteString(w, "\x1b[999C\x1b[999B"); werr != nil {
		return 0, 0, fmt.Errorf("getWindowSize: %w", werr)
	}
	rows, cols, perr := getCursorPosition(r, w)
	if perr != nil {
		if err != nil {
			return 0, 0, fmt.Errorf("getWindowSize: %w (ioctl: %v)", perr, err)
		}
		return 0, 0, fmt.Errorf("getWindowSize: %w", perr)
	}
	return rows, cols, nil
}

// getCursorPosition sends a Device Status Report request and parses the
// "ESC [ rows ; cols R" reply.
func getCursorPosition(r io.Reader, w io.Writer) (rows, cols int, err error) {
	if _, err := io.WriteString(w, "\x1b[6n"); err != nil {
		return 0, 0, err
	}
	var (
		buf [32]byte
		c   [1]byte
		i   int
	)
	for i < len(buf)-1 {
		n, _ := r.Read(c[:])
		if n != 1 {
			break
		}
		if c[0] == 'R' {
			break
		}
		buf[i] = c[0]
		i++
	}
	if i < 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, errNoCursorReport
	}
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position %q: %w", buf[2:i], err)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, errNoCursorReport
	}
	return rows, cols, nil
}
