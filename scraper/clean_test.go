package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain paragraph",
			input: "<p>Use the gpt-3.5-turbo model.</p>",
			want:  "Use the gpt-3.5-turbo model.",
		},
		{
			name:  "code element removed with contents",
			input: "<p>Use <code>print()</code> now</p>",
			want:  "Use now",
		},
		{
			name:  "pre block removed with contents",
			input: "<p>Run this:</p>\n<pre>pip install fastapi</pre>\n<p>then retry.</p>",
			want:  "Run this:\nthen retry.",
		},
		{
			name:  "quote removed with contents",
			input: "<blockquote><p>earlier question</p></blockquote><p>My answer.</p>",
			want:  "My answer.",
		},
		{
			name:  "nested code inside quote",
			input: "<blockquote>quoted <code>x = 1</code></blockquote>kept",
			want:  "kept",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "markup only",
			input: "<pre><code>curl -X POST</code></pre>",
			want:  "",
		},
		{
			name:  "malformed markup parsed permissively",
			input: "<p>unclosed <b>tag",
			want:  "unclosed tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanHTML(tt.input))
		})
	}
}

func TestCleanHTMLTrimsSurroundingWhitespace(t *testing.T) {
	got := CleanHTML("<p>\n  spaced  out\n</p>")
	assert.Equal(t, "spaced out", got)
}
