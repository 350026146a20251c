package interpolation

import (
	"regexp"

	"arb-extractor/internal/textutil"
)

// VariableTemplate is the placeholder form of a literal: the template has
// every interpolation marker replaced with a {name} placeholder, and
// Variables lists the placeholder names in first-seen order.
type VariableTemplate struct {
	HasVariables bool
	Variables    []string
	Template     string
}

// varMatch stores a detected interpolation variable position.
type varMatch struct {
	start, end int
	name       string
}

var (
	// ${value} style markers; the capture is the inner expression.
	bracedPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	// Bare $identifier markers. Go regexp has no lookbehind, so the
	// preceding character is checked manually against each match.
	sigilPattern = regexp.MustCompile(`\$(\w+)`)
)

// Detect finds interpolation markers in a literal and derives its template.
// Braced markers are resolved first; bare sigil identifiers are then found in
// the partially-templated string so a braced expression is never re-matched.
func Detect(content string) VariableTemplate {
	seen := make(map[string]struct{})
	var variables []string

	addVar := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		variables = append(variables, name)
	}

	template := substitute(content, findBraced(content), addVar)
	template = substitute(template, findSigils(template), addVar)

	if len(variables) == 0 {
		return VariableTemplate{Template: content}
	}
	return VariableTemplate{
		HasVariables: true,
		Variables:    variables,
		Template:     template,
	}
}

func findBraced(text string) []varMatch {
	var matches []varMatch
	for _, loc := range bracedPattern.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, varMatch{
			start: loc[0],
			end:   loc[1],
			name:  text[loc[2]:loc[3]],
		})
	}
	return matches
}

func findSigils(text string) []varMatch {
	var matches []varMatch
	for _, loc := range sigilPattern.FindAllStringSubmatchIndex(text, -1) {
		// Skip when preceded by a word character ("a$b" is not a marker).
		if loc[0] > 0 && isWordByte(text[loc[0]-1]) {
			continue
		}
		name := text[loc[2]:loc[3]]
		// A sigil followed by digits only is a currency-like token, not a
		// variable ("$100 off").
		if textutil.IsNumeric(name) {
			continue
		}
		matches = append(matches, varMatch{
			start: loc[0],
			end:   loc[1],
			name:  name,
		})
	}
	return matches
}

// substitute replaces each matched occurrence with its {name} placeholder.
// Replacement works on the recorded indices in reverse order so earlier
// offsets stay valid and similarly-named tokens are never clobbered.
func substitute(text string, matches []varMatch, addVar func(string)) string {
	for _, m := range matches {
		addVar(m.name)
	}
	result := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		result = result[:m.start] + "{" + m.name + "}" + result[m.end:]
	}
	return result
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
