package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abc", Center("abc", 3))
	assert.Equal(t, "ab…", Center("abcdef", 3))
	assert.Equal(t, 4, VisualWidth(Center("日", 4)))
}

func TestCells(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Cells("ab"))
	assert.Equal(t, []string{"日", "", "x"}, Cells("日x"))
	assert.Empty(t, Cells(""))
}

func TestVisualWidth(t *testing.T) {
	assert.Equal(t, 3, VisualWidth("abc"))
	assert.Equal(t, 4, VisualWidth("日本"))
	assert.Equal(t, 2, VisualWidthStyled("\x1b[1mab\x1b[0m"))
}
