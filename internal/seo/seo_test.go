package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCanonicalPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/", "/"},
		{"", "/"},
		{"news", "/news"},
		{"/news/", "/news"},
		{"/news///", "/news"},
		{"/news?page=2", "/news"},
		{"/news#latest", "/news"},
		{"/news?page=2#latest", "/news"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCanonicalPath(tt.input), "input %q", tt.input)
	}
}

func TestAbsoluteURL(t *testing.T) {
	site := NewSite("https://devopstic.example/")

	assert.Equal(t, "https://devopstic.example", site.URL())
	assert.Equal(t, "https://devopstic.example/", site.AbsoluteURL("/"))
	assert.Equal(t, "https://devopstic.example/news", site.AbsoluteURL("news/"))
	assert.Equal(t, "https://devopstic.example/authors/jane-doe", site.AbsoluteURL("/authors/jane-doe?ref=x"))
}
