package micro

import (
	"errors"
	"io"
)

// Key is a decoded keypress. Values below 256 are raw bytes, values from
// 1000 up are named special keys.
type Key int

// Key constants
const (
	ctrlA        Key = 1
	ctrlC        Key = 3
	ctrlD        Key = 4
	ctrlE        Key = 5
	ctrlF        Key = 6
	ctrlH        Key = 8
	ctrlL        Key = 12
	keyEnter     Key = 13
	ctrlQ        Key = 17
	ctrlS        Key = 19
	keyEsc       Key = 27
	keyBackspace Key = 127

	arrowLeft  Key = 1000
	arrowRight Key = 1001
	arrowUp    Key = 1002
	arrowDown  Key = 1003
	delKey     Key = 1004
	homeKey    Key = 1005
	endKey     Key = 1006
	pageUp     Key = 1007
	pageDown   Key = 1008
)

// IsSpecial reports whether k is a named key rather than a byte.
func (k Key) IsSpecial() bool { return k >= arrowLeft }

func (k Key) String() string {
	switch k {
	case arrowLeft:
		return "Left"
	case arrowRight:
		return "Right"
	case arrowUp:
		return "Up"
	case arrowDown:
		return "Down"
	case delKey:
		return "Delete"
	case homeKey:
		return "Home"
	case endKey:
		return "End"
	case pageUp:
		return "PageUp"
	case pageDown:
		return "PageDown"
	case keyEsc:
		return "Escape"
	case keyBackspace:
		return "Backspace"
	case keyEnter:
		return "Enter"
	}
	if k < 0x20 {
		return "Ctrl-" + string(rune('@'+k))
	}
	return string(rune(k))
}

// KeyReader decodes keypresses from a terminal in raw mode.
// The terminal is expected to return from a read after a short timeout with
// no data; such empty reads are retried while waiting for the first byte of
// a key, and end an escape sequence early.
type KeyReader struct {
	r   io.Reader
	buf [1]byte
}

// NewKeyReader returns a KeyReader reading from r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// readByte reads one byte. ok is false when the read timed out.
func (kr *KeyReader) readByte() (c byte, ok bool, err error) {
	n, err := kr.r.Read(kr.buf[:])
	if n == 1 {
		return kr.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) || isTimeout(err) {
		return 0, false, nil
	}
	return 0, false, err
}

// ReadKey blocks until a full key is available.
func (kr *KeyReader) ReadKey() (Key, error) {
	var (
		c   byte
		ok  bool
		err error
	)
	for !ok {
		if c, ok, err = kr.readByte(); err != nil {
			return 0, err
		}
	}
	if Key(c) != keyEsc {
		return Key(c), nil
	}

	var seq [3]byte
	for i := 0; i < 2; i++ {
		if seq[i], ok, err = kr.readByte(); err != nil || !ok {
			return keyEsc, err
		}
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if seq[2], ok, err = kr.readByte(); err != nil || !ok {
				return keyEsc, err
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return homeKey, nil
				case '3':
					return delKey, nil
				case '4', '8':
					return endKey, nil
				case '5':
					return pageUp, nil
				case '6':
					return pageDown, nil
				}
			}
			return keyEsc, nil
		}
		switch seq[1] {
		case 'A':
			return arrowUp, nil
		case 'B':
			return arrowDown, nil
		case 'C':
			return arrowRight, nil
		case 'D':
			return arrowLeft, nil
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	}
	return keyEsc, nil
}
