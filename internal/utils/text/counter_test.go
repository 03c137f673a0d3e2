package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "hello", want: 5},
		{name: "japanese", in: "こんにちは", want: 5},
		{name: "mixed", in: "hello世界", want: 7},
		{name: "emoji", in: "Hi😀", want: 3},
		{name: "invalid byte", in: "a\xffb", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountRunes(tt.in))
		})
	}
}

func TestExceedsRunes(t *testing.T) {
	assert.False(t, ExceedsRunes("こんにちは", 5))
	assert.True(t, ExceedsRunes("こんにちは", 4))
	assert.False(t, ExceedsRunes("", 0))
	assert.True(t, ExceedsRunes(strings.Repeat("a", 11), 10))
}

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "just words", want: "just words"},
		{name: "entities", in: "caf&eacute; &amp; bar", want: "café & bar"},
		{
			name: "paragraphs",
			in:   "<p>Hello <b>world</b></p><p>日本語</p>",
			want: "Hello world\n日本語",
		},
		{
			name: "drops scripts and styles",
			in:   "<style>p{color:red}</style><p>kept</p><script>alert(1)</script>",
			want: "kept",
		},
		{
			name: "line breaks",
			in:   "one<br>two<br/>three",
			want: "one\ntwo\nthree",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromHTML(tt.in))
		})
	}
}
