package micro

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stutterReader returns every byte of data only after a number of empty
// reads, the way a raw mode terminal with a read timeout does.
type stutterReader struct {
	data   []byte
	empty  int
	misses int
}

func (r *stutterReader) Read(p []byte) (int, error) {
	if r.misses < r.empty {
		r.misses++
		return 0, nil
	}
	r.misses = 0
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p[:1], r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"letter", "a", 'a'},
		{"space", " ", ' '},
		{"control", "\x11", ctrlQ},
		{"enter", "\r", keyEnter},
		{"backspace", "\x7f", keyBackspace},
		{"high byte", "\xe9", 0xe9},
		{"up", "\x1b[A", arrowUp},
		{"down", "\x1b[B", arrowDown},
		{"right", "\x1b[C", arrowRight},
		{"left", "\x1b[D", arrowLeft},
		{"home", "\x1b[H", homeKey},
		{"end", "\x1b[F", endKey},
		{"ss3 home", "\x1bOH", homeKey},
		{"ss3 end", "\x1bOF", endKey},
		{"home 1", "\x1b[1~", homeKey},
		{"home 7", "\x1b[7~", homeKey},
		{"delete", "\x1b[3~", delKey},
		{"end 4", "\x1b[4~", endKey},
		{"end 8", "\x1b[8~", endKey},
		{"page up", "\x1b[5~", pageUp},
		{"page down", "\x1b[6~", pageDown},
		{"bare escape", "\x1b", keyEsc},
		{"escape bracket", "\x1b[", keyEsc},
		{"unterminated number", "\x1b[5", keyEsc},
		{"unknown number", "\x1b[2~", keyEsc},
		{"number without tilde", "\x1b[5x", keyEsc},
		{"unknown letter", "\x1b[Z", keyEsc},
		{"unknown ss3", "\x1bOP", keyEsc},
		{"alt letter", "\x1bxy", keyEsc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kr := NewKeyReader(strings.NewReader(tt.in))
			got, err := kr.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %v", got)
		})
	}
}

func TestReadKeySequence(t *testing.T) {
	kr := NewKeyReader(strings.NewReader("\x1b[Aq\x1b[6~\x7f"))
	want := []Key{arrowUp, 'q', pageDown, keyBackspace}
	for _, w := range want {
		got, err := kr.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestReadKeyRetriesTimeouts(t *testing.T) {
	kr := NewKeyReader(&stutterReader{data: []byte("x"), empty: 5})
	got, err := kr.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Key('x'), got)
}

func TestReadKeyTimeoutInsideSequence(t *testing.T) {
	// The reader goes quiet after ESC, so the sequence is cut short.
	kr := NewKeyReader(&stutterReader{data: []byte("\x1b[A"), empty: 1})
	got, err := kr.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, keyEsc, got)
}

func TestReadKeyError(t *testing.T) {
	boom := errors.New("boom")
	kr := NewKeyReader(io.MultiReader(strings.NewReader("\x1b"), errReader{boom}))
	_, err := kr.ReadKey()
	assert.ErrorIs(t, err, boom)

	kr = NewKeyReader(errReader{boom})
	_, err = kr.ReadKey()
	assert.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Up", arrowUp.String())
	assert.Equal(t, "Ctrl-Q", ctrlQ.String())
	assert.Equal(t, "Escape", keyEsc.String())
	assert.Equal(t, "a", Key('a').String())
	assert.True(t, pageDown.IsSpecial())
	assert.False(t, keyBackspace.IsSpecial())
}
