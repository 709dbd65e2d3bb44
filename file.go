package micro

import (
	"fmt"
	"os"
)

// Open loads filename into an empty editor. The file must exist.
func (e *Editor) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := NewBuffer(e.cfg.TabStop)
	if _, err := buf.ReadFrom(f); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	e.buf = buf
	e.filename = filename
	e.cx, e.cy = 0, 0
	e.rowoff, e.coloff = 0, 0
	e.dirty = 0
	e.logger.Printf("opened %s: %d lines", filename, buf.NumRows())
	return nil
}

// save writes the buffer to its file, asking for a name first if it has
// none. I/O failures are reported in the message bar and leave the editor
// state unchanged; only a failure to read the prompt is returned.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)")
		if err != nil {
			return err
		}
		if !ok {
			e.setStatusMessage("Save aborted")
			return nil
		}
		e.filename = name
	}

	data := e.buf.Bytes()
	if err := writeFile(e.filename, data); err != nil {
		e.logger.Printf("save %s: %v", e.filename, err)
		e.setStatusMessage("Can't save! I/O error: %s", err)
		return nil
	}
	e.dirty = 0
	e.logger.Printf("saved %s: %d bytes", e.filename, len(data))
	e.setStatusMessage("%d bytes written to disk", len(data))
	return nil
}

// writeFile truncates name to exactly len(data) bytes and writes data
// into it.
func writeFile(name string, data []byte) (err error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := f.Truncate(int64(len(data))); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
