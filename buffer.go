package micro

import (
	"bufio"
	"bytes"
	"io"
)

// Buffer is the ordered list of rows that make up a document.
type Buffer struct {
	rows    []*Row
	tabStop int
}

// NewBuffer returns an empty buffer that expands tabs to tabStop columns.
func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = defaultTabStop
	}
	return &Buffer{tabStop: tabStop}
}

// NumRows returns the number of rows in the buffer.
func (b *Buffer) NumRows() int { return len(b.rows) }

// TabStop returns the tab width used when rendering rows.
func (b *Buffer) TabStop() int { return b.tabStop }

// Row returns the row at index at, or nil if there is none.
// The returned row must not be kept across an InsertRow or DeleteRow.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

// InsertRow inserts a new row holding s at index at.
// It returns false, and does nothing, when at is out of range.
func (b *Buffer) InsertRow(at int, s []byte) bool {
	if at < 0 || at > len(b.rows) {
		return false
	}
	row := newRow(s, b.tabStop)
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	return true
}

// DeleteRow removes the row at index at.
func (b *Buffer) DeleteRow(at int) bool {
	if at < 0 || at >= len(b.rows) {
		return false
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	return true
}

// InsertChar inserts c into row at column col.
func (b *Buffer) InsertChar(at, col int, c byte) bool {
	row := b.Row(at)
	if row == nil {
		return false
	}
	row.InsertChar(col, c, b.tabStop)
	return true
}

// DeleteChar removes the byte at column col of row at.
func (b *Buffer) DeleteChar(at, col int) bool {
	row := b.Row(at)
	if row == nil {
		return false
	}
	return row.DeleteChar(col, b.tabStop)
}

// AppendToRow appends s to row at.
func (b *Buffer) AppendToRow(at int, s []byte) bool {
	row := b.Row(at)
	if row == nil {
		return false
	}
	row.Append(s, b.tabStop)
	return true
}

// SplitRow moves everything from column col of row at into a new row
// inserted right after it.
func (b *Buffer) SplitRow(at, col int) bool {
	row := b.Row(at)
	if row == nil {
		return false
	}
	if col > row.Len() {
		col = row.Len()
	}
	tail := append([]byte(nil), row.chars[col:]...)
	b.InsertRow(at+1, tail)
	b.rows[at].Truncate(col, b.tabStop)
	return true
}

// Bytes serializes the buffer. Every row, including the last one, is
// followed by a newline.
func (b *Buffer) Bytes() []byte {
	total := 0
	for _, row := range b.rows {
		total += row.Len() + 1
	}
	buf := make([]byte, 0, total)
	for _, row := range b.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// ReadFrom appends one row per line read from r. Trailing newline and
// carriage return bytes are stripped from each line.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		n += int64(len(line))
		if len(line) > 0 {
			b.InsertRow(len(b.rows), bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
