package micro

// insertChar inserts c at the cursor. At the line past the end of the
// document a new row is created first.
func (e *Editor) insertChar(c byte) {
	if e.cy == e.buf.NumRows() {
		e.buf.InsertRow(e.cy, nil)
	}
	e.buf.InsertChar(e.cy, e.cx, c)
	e.cx++
	e.dirty++
}

// insertNewline splits the current row at the cursor, or opens an empty row
// above it when the cursor is at column 0.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.buf.InsertRow(e.cy, nil)
	} else {
		e.buf.SplitRow(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
	e.dirty++
}

// delChar deletes the byte left of the cursor. At column 0 the current row
// is joined onto the previous one.
func (e *Editor) delChar() {
	if e.cy == e.buf.NumRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	if e.cx > 0 {
		e.buf.DeleteChar(e.cy, e.cx-1)
		e.cx--
	} else {
		prev := e.buf.Row(e.cy - 1)
		e.cx = prev.Len()
		e.buf.AppendToRow(e.cy-1, e.buf.Row(e.cy).chars)
		e.buf.DeleteRow(e.cy)
		e.cy--
	}
	e.dirty++
}

// moveCursor moves the cursor one step in the direction of key, wrapping
// left and right across line ends.
func (e *Editor) moveCursor(key Key) {
	row := e.buf.Row(e.cy)

	switch key {
	case arrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.buf.Row(e.cy).Len()
		}
	case arrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case arrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case arrowDown:
		if e.cy < e.buf.NumRows() {
			e.cy++
		}
	}

	// Fix cx if the new line is shorter
	rowlen := 0
	if row := e.buf.Row(e.cy); row != nil {
		rowlen = row.Len()
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}
