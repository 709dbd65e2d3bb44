package micro

// prompt shows format in the message bar, with %s replaced by what the user
// has typed so far, until Enter is pressed on a non-empty input or Escape
// cancels. ok is false when the prompt was cancelled.
func (e *Editor) prompt(format string) (input string, ok bool, err error) {
	var buf []byte
	for {
		e.setStatusMessage(format, buf)
		if err := e.refresh(); err != nil {
			return "", false, err
		}

		c, err := e.keys.ReadKey()
		if err != nil {
			return "", false, err
		}
		switch {
		case c == delKey || c == ctrlH || c == keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case c == keyEsc:
			e.setStatusMessage("")
			return "", false, nil
		case c == keyEnter:
			if len(buf) > 0 {
				e.setStatusMessage("")
				return string(buf), true, nil
			}
		case c >= 0x20 && c < 0x7f:
			buf = append(buf, byte(c))
		}
	}
}
