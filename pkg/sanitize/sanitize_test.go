package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_AllowedMarkup(t *testing.T) {
	s := New()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{"paragraph", "<p>Show notes</p>", []string{"<p>Show notes</p>"}},
		{"list", "<ul><li>one</li><li>two</li></ul>", []string{"<ul>", "<li>one</li>", "</ul>"}},
		{"code", "<pre><code>go test ./...</code></pre>", []string{"<pre><code>go test ./...</code></pre>"}},
		{"link", `<a href="https://example.com/ep1">episode</a>`, []string{`href="https://example.com/ep1"`, `rel="noreferrer noopener"`, `target="_blank"`}},
		{"image", `<img src="https://example.com/cover.png" alt="cover">`, []string{`src="https://example.com/cover.png"`, `alt="cover"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestSanitize_RemovesDangerousMarkup(t *testing.T) {
	s := New()

	tests := []struct {
		name       string
		input      string
		notContain []string
	}{
		{"script", `<p>hi</p><script>alert(1)</script>`, []string{"<script", "alert(1)"}},
		{"iframe", `<iframe src="https://evil.example"></iframe>text`, []string{"<iframe"}},
		{"event handler", `<p onclick="steal()">click</p>`, []string{"onclick", "steal()"}},
		{"javascript url", `<a href="javascript:alert(1)">x</a>`, []string{"javascript:"}},
		{"relative url", `<a href="/local">x</a>`, []string{"/local"}},
		{"style", `<style>body{}</style><p>x</p>`, []string{"<style", "body{}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			for _, bad := range tt.notContain {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestSanitize_EmptyAndIdempotent(t *testing.T) {
	s := New()

	assert.Equal(t, "", s.Sanitize(""))

	input := `<p>Episode <strong>323</strong> <a href="https://example.com">notes</a></p>`
	once := s.Sanitize(input)
	assert.Equal(t, once, s.Sanitize(once))
}

func TestStrict(t *testing.T) {
	s := Strict()

	assert.Equal(t, "Episode 323 notes", s.Sanitize(`  <p>Episode <b>323</b> notes</p> `))
}
