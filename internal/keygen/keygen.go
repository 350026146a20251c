package keygen

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"arb-extractor/internal/textutil"
)

// Taken reports whether a candidate key is already present in the resource
// table. Collision resolution probes through it until a free key is found.
type Taken func(key string) bool

var titleCaser = cases.Title(language.English)

// Generator derives stable camelCase keys from literal content. Identical
// content always yields the same key within a run (content-hash cache);
// distinct content that normalizes identically is disambiguated with _N
// suffixes against the table.
type Generator struct {
	cache   map[string]string // content hash → assigned key
	counter int               // monotonic fallback for unusable content
}

func New() *Generator {
	return &Generator{cache: make(map[string]string)}
}

// Key returns the key for the given literal content, generating and
// registering one on first sight. The key is derived from basis, the literal
// with placeholder markers stripped, so "Hello {name}" keys as "hello". The
// cache is keyed by the full original content.
func (g *Generator) Key(content, basis string, taken Taken) string {
	hash := textutil.Hash(content)
	if key, ok := g.cache[hash]; ok {
		return key
	}

	base := camelCase(basis)
	if base == "" || unicode.IsDigit(rune(base[0])) {
		g.counter++
		base = "stringKey" + strconv.Itoa(g.counter)
	}

	key := base
	for n := 1; taken(key); n++ {
		key = base + "_" + strconv.Itoa(n)
	}

	g.cache[hash] = key
	return key
}

// camelCase normalizes literal content into an identifier: strip everything
// but letters, digits and spaces, collapse whitespace runs, lower-case the
// first segment and title-case the rest.
func camelCase(content string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return ' '
	}, content)

	segments := strings.Fields(cleaned)
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(segments[0]))
	for _, seg := range segments[1:] {
		b.WriteString(titleCaser.String(strings.ToLower(seg)))
	}
	return b.String()
}
