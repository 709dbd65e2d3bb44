package micro

import "bytes"

const keyTab = '\t'

// Row represents a single line of the file being edited.
// chars holds the line as it is stored on disk, render holds the line as it
// is drawn, with tabs expanded.
type Row struct {
	chars  []byte
	render []byte
}

func newRow(s []byte, tabStop int) *Row {
	row := &Row{chars: append([]byte(nil), s...)}
	row.update(tabStop)
	return row
}

// Len returns the length of the row in file columns.
func (row *Row) Len() int { return len(row.chars) }

// RenderLen returns the length of the row in rendered columns.
func (row *Row) RenderLen() int { return len(row.render) }

// String returns the file form of the row.
func (row *Row) String() string { return string(row.chars) }

// Rendered returns the display form of the row.
func (row *Row) Rendered() string { return string(row.render) }

// update recomputes the render form. Every tab emits at least one space and
// then pads up to the next tab stop.
func (row *Row) update(tabStop int) {
	tabs := bytes.Count(row.chars, []byte{keyTab})
	render := make([]byte, 0, len(row.chars)+tabs*(tabStop-1))
	for _, c := range row.chars {
		if c == keyTab {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render
}

// CxToRx converts a file column into a rendered column.
func (row *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(row.chars); j++ {
		if row.chars[j] == keyTab {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a rendered column into a file column. A rendered column
// inside the expansion of a tab maps to the column of that tab.
func (row *Row) RxToCx(rx, tabStop int) int {
	curRx := 0
	cx := 0
	for ; cx < len(row.chars); cx++ {
		if row.chars[cx] == keyTab {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// InsertChar inserts c at column at. Columns outside the row append.
func (row *Row) InsertChar(at int, c byte, tabStop int) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
	row.update(tabStop)
}

// DeleteChar removes the byte at column at, if there is one.
func (row *Row) DeleteChar(at int, tabStop int) bool {
	if at < 0 || at >= len(row.chars) {
		return false
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	row.update(tabStop)
	return true
}

// Append adds s to the end of the row.
func (row *Row) Append(s []byte, tabStop int) {
	row.chars = append(row.chars, s...)
	row.update(tabStop)
}

// Truncate cuts the row at column at and returns a copy of what was removed.
func (row *Row) Truncate(at int, tabStop int) []byte {
	if at < 0 {
		at = 0
	}
	if at >= len(row.chars) {
		return nil
	}
	tail := append([]byte(nil), row.chars[at:]...)
	row.chars = row.chars[:at]
	row.update(tabStop)
	return tail
}
