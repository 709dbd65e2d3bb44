package micro

import (
	"bytes"
	"fmt"
	"strconv"
)

// scroll recomputes the render column of the cursor and moves the viewport
// so that the cursor is inside it.
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.buf.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx, e.buf.TabStop())
	}
	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenrows {
		e.rowoff = e.cy - e.screenrows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screencols {
		e.coloff = e.rx - e.screencols + 1
	}
}

// refresh draws the whole screen. The frame is built in memory and written
// with a single call so the terminal never shows a half drawn screen.
func (e *Editor) refresh() error {
	if e.resized.CompareAndSwap(true, false) {
		if err := e.updateWindowSize(); err != nil {
			return err
		}
	}
	e.scroll()

	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l") // Hide cursor
	ab.WriteString("\x1b[H")    // Go home

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	fmt.Fprintf(&ab, "\x1b[%d;%dH", e.cy-e.rowoff+1, e.rx-e.coloff+1)
	ab.WriteString("\x1b[?25h") // Show cursor

	if _, err := e.out.Write(ab.Bytes()); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	numrows := e.buf.NumRows()
	for y := 0; y < e.screenrows; y++ {
		filerow := e.rowoff + y

		if filerow >= numrows {
			if numrows == 0 && y == e.screenrows/3 {
				e.drawWelcome(ab)
			} else {
				ab.WriteByte('~')
			}
			ab.WriteString("\x1b[K\r\n")
			continue
		}

		render := e.buf.Row(filerow).render
		if e.coloff < len(render) {
			render = render[e.coloff:]
			if len(render) > e.screencols {
				render = render[:e.screencols]
			}
			drawText(ab, render)
		}
		ab.WriteString("\x1b[K\r\n")
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	welcome := e.cfg.Welcome
	if len(welcome) > e.screencols {
		welcome = welcome[:e.screencols]
	}
	padding := (e.screencols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

// drawText writes rendered text, showing control bytes in reverse video so
// that they can not be interpreted by the terminal.
func drawText(ab *bytes.Buffer, s []byte) {
	for _, c := range s {
		if c >= 0x20 && c != 0x7f {
			ab.WriteByte(c)
			continue
		}
		ab.WriteString("\x1b[7m")
		if c <= 26 {
			ab.WriteByte('@' + c)
		} else {
			ab.WriteByte('?')
		}
		ab.WriteString("\x1b[m")
	}
}

func (e *Editor) statusLine() (left, right string) {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	left = name + " - " + strconv.Itoa(e.buf.NumRows()) + " lines"
	if e.dirty > 0 {
		left += " (modified)"
	}
	right = fmt.Sprintf("%d/%d", e.cy+1, e.buf.NumRows())
	return left, right
}

func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[7m")
	status, rstatus := e.statusLine()
	if len(status) > e.screencols {
		status = status[:e.screencols]
	}
	ab.WriteString(status)
	for n := len(status); n < e.screencols; n++ {
		if e.screencols-n == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString("\x1b[m\r\n")
}

func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[K")
	msg := e.statusmsg
	if len(msg) > e.screencols {
		msg = msg[:e.screencols]
	}
	if msg != "" && e.now().Sub(e.statustime) < e.cfg.messageTimeout() {
		ab.WriteString(msg)
	}
}
