package scanner

import (
	"regexp"
	"sort"
	"strings"
)

// ContextTag classifies the syntactic role of a literal. It only shapes the
// generated accessor expression and the entry description.
type ContextTag int

const (
	General ContextTag = iota
	Text
	Title
	AppBar
	SnackBar
	Dialog
	HintText
	LabelText
	ButtonText
)

func (t ContextTag) String() string {
	switch t {
	case Text:
		return "Text"
	case Title:
		return "Title"
	case AppBar:
		return "AppBar"
	case SnackBar:
		return "SnackBar"
	case Dialog:
		return "Dialog"
	case HintText:
		return "HintText"
	case LabelText:
		return "LabelText"
	case ButtonText:
		return "ButtonText"
	default:
		return "General"
	}
}

// RawLiteral is one quoted string candidate found in a buffer. Offsets span
// the quotes so the rewriter can replace the literal in place.
type RawLiteral struct {
	OriginalText string
	InnerText    string
	Start        int
	End          int
	Context      ContextTag
}

// Literal grammars: any character or an escaped character, non-greedy, per
// quote style. Both grammars run independently over the buffer.
var literalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"(?:\\.|[^"\\])*?"`),
	regexp.MustCompile(`'(?:\\.|[^'\\])*?'`),
}

var (
	textCtorPattern  = regexp.MustCompile(`\bText\(\s*$`)
	hintTextPattern  = regexp.MustCompile(`\bhintText:\s*$`)
	labelTextPattern = regexp.MustCompile(`\blabelText:\s*$`)
	titlePattern     = regexp.MustCompile(`\btitle:\s*$`)
)

// containerTokens map a constructor token found anywhere in the lookbehind
// window to a context tag. Checked after the direct-suffix patterns.
var containerTokens = []struct {
	token string
	tag   ContextTag
}{
	{"AppBar(", AppBar},
	{"SnackBar(", SnackBar},
	{"AlertDialog(", Dialog},
	{"SimpleDialog(", Dialog},
	{"ElevatedButton(", ButtonText},
	{"TextButton(", ButtonText},
	{"OutlinedButton(", ButtonText},
}

// titledContainers are constructs whose title: strings use their own
// configuration mechanism and must not be extracted. A narrow heuristic, not
// a scope analyzer.
var titledContainers = []string{
	"Drawer(",
	"DropdownMenuItem(",
	"PopupMenuItem(",
}

const (
	contextWindow = 100
	titledWindow  = 200
)

// Scan finds quoted string literal candidates in buf. Structural statements
// (import/export/part lines) and titled-container strings are excluded, and
// overlapping matches across the two grammars collapse to the earliest one.
func Scan(buf string) []RawLiteral {
	var literals []RawLiteral

	for _, p := range literalPatterns {
		for _, loc := range p.FindAllStringIndex(buf, -1) {
			start, end := loc[0], loc[1]
			original := buf[start:end]
			if len(original) < 2 {
				continue
			}
			if onStructuralLine(buf, start) {
				continue
			}
			if inTitledContainer(buf, start) {
				continue
			}
			literals = append(literals, RawLiteral{
				OriginalText: original,
				InnerText:    original[1 : len(original)-1],
				Start:        start,
				End:          end,
				Context:      classify(buf, start),
			})
		}
	}

	sort.Slice(literals, func(i, j int) bool {
		if literals[i].Start != literals[j].Start {
			return literals[i].Start < literals[j].Start
		}
		return literals[i].End > literals[j].End
	})

	// The two grammars can produce overlapping spans (a double quote inside
	// a single-quoted literal and vice versa). Keep the earliest span and
	// drop anything overlapping it so the rewriter never double-edits.
	var filtered []RawLiteral
	lastEnd := -1
	for _, lit := range literals {
		if lit.Start < lastEnd {
			continue
		}
		filtered = append(filtered, lit)
		lastEnd = lit.End
	}
	return filtered
}

// onStructuralLine reports whether the literal's line starts with an
// import/export/part declaration. Those literals are never localizable.
func onStructuralLine(buf string, start int) bool {
	lineStart := strings.LastIndexByte(buf[:start], '\n') + 1
	line := strings.TrimLeft(buf[lineStart:start], " \t")
	for _, kw := range []string{"import", "export", "part"} {
		rest, ok := strings.CutPrefix(line, kw)
		if !ok {
			continue
		}
		if strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "'") || strings.HasPrefix(rest, "\"") {
			return true
		}
	}
	return false
}

// inTitledContainer reports whether the literal directly follows a title:
// assignment inside one of the titled-container constructs.
func inTitledContainer(buf string, start int) bool {
	window := buf[max(0, start-titledWindow):start]
	idx := strings.LastIndex(window, "title:")
	if idx < 0 {
		return false
	}
	// Only when the title: assignment immediately precedes the literal.
	if strings.TrimSpace(window[idx+len("title:"):]) != "" {
		return false
	}
	for _, c := range titledContainers {
		if strings.Contains(window[:idx], c) {
			return true
		}
	}
	return false
}

// classify scans the preceding window for known constructor and property
// tokens. Priority: display-text constructor, then property names, then
// container tokens, else General.
func classify(buf string, start int) ContextTag {
	window := buf[max(0, start-contextWindow):start]

	if textCtorPattern.MatchString(window) {
		return Text
	}
	switch {
	case hintTextPattern.MatchString(window):
		return HintText
	case labelTextPattern.MatchString(window):
		return LabelText
	case titlePattern.MatchString(window):
		return Title
	}

	best := General
	bestIdx := -1
	for _, c := range containerTokens {
		if idx := strings.LastIndex(window, c.token); idx > bestIdx {
			bestIdx = idx
			best = c.tag
		}
	}
	return best
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
