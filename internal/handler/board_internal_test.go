package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumire/projects/internal/view"
)

func TestWriteEvent(t *testing.T) {
	tests := map[string]struct {
		data string
		want string
	}{
		"single line":  {"<li>a</li>", "event: x\ndata: <li>a</li>\n\n"},
		"empty":        {"", "event: x\ndata: \n\n"},
		"newline":      {"a\nb", "event: x\ndata: a\ndata: b\n\n"},
		"carriage":     {"<p>a\rb</p>", "event: x\ndata: <p>a\ndata: b</p>\n\n"},
		"crlf":         {"a\r\nb", "event: x\ndata: a\ndata: b\n\n"},
		"mixed breaks": {"a\r\rb\n", "event: x\ndata: a\ndata: \ndata: b\ndata: \n\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b strings.Builder

			require.NoError(t, writeEvent(&b, view.Event{Name: "x", Data: tt.data}))

			assert.Equal(t, tt.want, b.String())
			assert.NotContains(t, b.String(), "\r")
		})
	}
}
