package filter

import (
	"strings"
	"unicode/utf8"

	"arb-extractor/internal/textutil"
)

// denylist holds substrings that mark a literal as structural rather than
// human-readable: asset paths, file extensions, and framework symbol or
// property-name tokens. Extend as new false positives show up.
var denylist = []string{
	"assets/",
	"images/",
	"fonts/",
	".png",
	".jpg",
	".jpeg",
	".svg",
	".gif",
	".webp",
	".json",
	".ttf",
	".otf",
	".dart",
	"package:",
	"dart:",
	"MaterialIcons",
	"CupertinoIcons",
	"fontFamily",
	"routeName",
	"/api/",
	"utf-8",
	"application/",
	"text/html",
	"Roboto",
	"sans-serif",
}

// ShouldIgnore decides whether a literal is eligible for externalization.
// The filter is deliberately conservative: skipping a localizable string is
// recoverable, corrupting a structural token is not.
func ShouldIgnore(content string) bool {
	// Covers both the empty/one-character case and single letters.
	if utf8.RuneCountInString(content) <= 1 {
		return true
	}
	if textutil.IsNumeric(content) {
		return true
	}
	if strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://") {
		return true
	}
	if looksLikePath(content) {
		return true
	}
	for _, d := range denylist {
		if strings.Contains(content, d) {
			return true
		}
	}
	return false
}

// looksLikePath matches multi-segment slash paths with no embedded spaces,
// e.g. "lib/screens/home.dart" but not "and/or maybe".
func looksLikePath(content string) bool {
	if !strings.Contains(content, "/") || strings.Contains(content, " ") {
		return false
	}
	segments := strings.Split(content, "/")
	nonEmpty := 0
	for _, s := range segments {
		if s != "" {
			nonEmpty++
		}
	}
	return nonEmpty > 1
}
