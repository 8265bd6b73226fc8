// Package seo builds the canonical URLs advertised in page metadata, the
// sitemap, and robots.txt.
package seo

import "strings"

// Site wraps the configured public site URL.
type Site struct {
	baseURL string
}

// NewSite builds a Site from the configured public URL; trailing slashes are
// ignored.
func NewSite(siteURL string) *Site {
	return &Site{baseURL: strings.TrimRight(siteURL, "/")}
}

// URL returns the bare site URL with no trailing slash.
func (s *Site) URL() string {
	return s.baseURL
}

// AbsoluteURL resolves a path against the site URL after canonical
// normalization.
func (s *Site) AbsoluteURL(path string) string {
	normalized := NormalizeCanonicalPath(path)
	if normalized == "/" {
		return s.baseURL + "/"
	}
	return s.baseURL + normalized
}

// NormalizeCanonicalPath strips query and fragment, forces a leading slash,
// and trims trailing slashes. The root path stays "/".
func NormalizeCanonicalPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
