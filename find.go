package micro

import "bytes"

// find asks for a query and moves the cursor to its first occurrence,
// scrolling so that the matching row is at the top of the screen.
func (e *Editor) find() error {
	query, ok, err := e.prompt("Search: %s (ESC to cancel)")
	if err != nil {
		return err
	}
	if !ok {
		e.setStatusMessage("Search cancelled")
		return nil
	}
	if !e.findQuery(query) {
		e.setStatusMessage("No match for %q", query)
	}
	return nil
}

// findQuery scans the rendered rows from the top for query. The cursor is
// left alone when nothing matches.
func (e *Editor) findQuery(query string) bool {
	q := []byte(query)
	for i := 0; i < e.buf.NumRows(); i++ {
		row := e.buf.Row(i)
		match := bytes.Index(row.render, q)
		if match == -1 {
			continue
		}
		e.cy = i
		e.cx = row.RxToCx(match, e.buf.TabStop())
		e.rowoff = i
		return true
	}
	return false
}
