// Package slug derives URL-safe identifiers from human-readable names.
// All functions are pure and idempotent.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

// Category lowercases a category name and strips every non-alphanumeric
// character. No separator is retained, so "CI/CD" and "CICD" collide; that
// is accepted.
func Category(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "general"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lesson turns an article title into its canonical path segment: Unicode
// NFKD normalization, combining marks stripped, lowercased. Whitespace and
// hyphen runs collapse to a single hyphen; every other non-alphanumeric is
// dropped in place, so "CI/CD" folds to "cicd" rather than splitting.
func Lesson(title string) string {
	decomposed := norm.NFKD.String(title)

	var b strings.Builder
	lastHyphen := true // suppresses a leading hyphen
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Author maps an author display name onto a /authors/{slug} segment. Same
// normalization family as Lesson.
func Author(name string) string {
	return Lesson(name)
}

// LessonPath builds the canonical URL path for an article.
func LessonPath(a models.Article) string {
	category := a.CategoryName
	if category == "" {
		category = a.CategoryID
	}
	return "/lessons/" + Category(category) + "/" + Lesson(a.Title)
}
