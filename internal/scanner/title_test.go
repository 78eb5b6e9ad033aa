package scanner

import "testing"

func TestTitle_Frontmatter(t *testing.T) {
	data := []byte("---\ntitle: From FM\n---\n# From H1\ntext\n")
	if got := Title(data); got != "From FM" {
		t.Errorf("title = %q, want %q", got, "From FM")
	}
}

func TestTitle_H1Fallback(t *testing.T) {
	data := []byte("some text\n# My Heading\nmore\n")
	if got := Title(data); got != "My Heading" {
		t.Errorf("title = %q, want %q", got, "My Heading")
	}
}

func TestTitle_InvalidYAMLFallsBack(t *testing.T) {
	data := []byte("---\n: bad: yaml: {{{\n---\n# Heading\n")
	if got := Title(data); got != "Heading" {
		t.Errorf("title = %q, want %q", got, "Heading")
	}
}

func TestTitle_None(t *testing.T) {
	if got := Title([]byte("plain text only\n")); got != "" {
		t.Errorf("title = %q, want empty", got)
	}
}
