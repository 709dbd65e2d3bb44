package micro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowRender(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"leading tab", "\tx", "        x"},
		{"tab after text", "ab\tc", "ab      c"},
		{"tab at stop", "12345678\tx", "12345678        x"},
		{"tab one before stop", "1234567\tx", "1234567 x"},
		{"two tabs", "\t\t", strings.Repeat(" ", 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := newRow([]byte(tt.chars), 8)
			assert.Equal(t, tt.want, row.Rendered())
			assert.Equal(t, len(tt.want), row.RenderLen())
			assert.Equal(t, len(tt.chars), row.Len())
		})
	}
}

func TestRowRenderOnlyTabs(t *testing.T) {
	for n := 1; n <= 5; n++ {
		row := newRow([]byte(strings.Repeat("\t", n)), 8)
		assert.Equal(t, 8*n, row.RenderLen())
		for cx := 0; cx <= n; cx++ {
			assert.Zero(t, row.CxToRx(cx, 8)%8, "tab boundary %d of %d", cx, n)
		}
	}
}

func TestRowRenderCustomTabStop(t *testing.T) {
	row := newRow([]byte("a\tb"), 4)
	assert.Equal(t, "a   b", row.Rendered())
	assert.Equal(t, 4, row.CxToRx(2, 4))
}

func TestRowCxToRx(t *testing.T) {
	row := newRow([]byte("\tab\tc"), 8)
	want := []int{0, 8, 9, 10, 16, 17}
	for cx, rx := range want {
		assert.Equal(t, rx, row.CxToRx(cx, 8), "cx %d", cx)
	}
}

func TestRowRoundTrip(t *testing.T) {
	for _, s := range []string{"", "abc", "\t", "a\tb\tc", "\t\tx\t", "12345678\t"} {
		row := newRow([]byte(s), 8)
		for cx := 0; cx <= row.Len(); cx++ {
			rx := row.CxToRx(cx, 8)
			assert.Equal(t, cx, row.RxToCx(rx, 8), "%q cx %d", s, cx)
		}
	}
}

func TestRowRxToCxInsideTab(t *testing.T) {
	row := newRow([]byte("a\tb"), 8)
	// The tab covers rendered columns 1 to 7.
	for rx := 1; rx < 8; rx++ {
		assert.Equal(t, 1, row.RxToCx(rx, 8), "rx %d", rx)
	}
	assert.Equal(t, 2, row.RxToCx(8, 8))
	assert.Equal(t, 3, row.RxToCx(100, 8))
}

func TestRowInsertChar(t *testing.T) {
	row := newRow([]byte("ac"), 8)
	row.InsertChar(1, 'b', 8)
	assert.Equal(t, "abc", row.String())
	row.InsertChar(0, '\t', 8)
	assert.Equal(t, "\tabc", row.String())
	assert.Equal(t, "        abc", row.Rendered())
	row.InsertChar(99, '!', 8)
	assert.Equal(t, "\tabc!", row.String())
	row.InsertChar(-1, '?', 8)
	assert.Equal(t, "\tabc!?", row.String())
}

func TestRowDeleteChar(t *testing.T) {
	row := newRow([]byte("a\tb"), 8)
	assert.True(t, row.DeleteChar(1, 8))
	assert.Equal(t, "ab", row.String())
	assert.Equal(t, "ab", row.Rendered())
	assert.False(t, row.DeleteChar(2, 8))
	assert.False(t, row.DeleteChar(-1, 8))
	assert.Equal(t, "ab", row.String())
}

func TestRowAppendAndTruncate(t *testing.T) {
	row := newRow([]byte("ab"), 8)
	row.Append([]byte("\tcd"), 8)
	assert.Equal(t, "ab\tcd", row.String())
	assert.Equal(t, "ab      cd", row.Rendered())

	tail := row.Truncate(2, 8)
	assert.Equal(t, "\tcd", string(tail))
	assert.Equal(t, "ab", row.String())
	assert.Equal(t, "ab", row.Rendered())

	row.Append([]byte("xy"), 8)
	assert.Equal(t, "\tcd", string(tail), "tail must not share storage with the row")
	assert.Nil(t, row.Truncate(10, 8))
}
