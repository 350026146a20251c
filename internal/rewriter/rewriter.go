package rewriter

import (
	"sort"
	"strings"

	"arb-extractor/internal/scanner"
)

// Replacement is one literal span to substitute, with the resolved key and
// the accessor arguments when the resource entry has placeholders.
type Replacement struct {
	Start   int
	End     int
	Context scanner.ContextTag
	Key     string
	Args    []string
}

// Rewriter substitutes literals with accessor expressions and wires the file
// for localization. ClassName and ImportPath come from configuration, not
// constants: the caller resolves the generated accessor module.
type Rewriter struct {
	ClassName  string
	ImportPath string
}

func New(className, importPath string) *Rewriter {
	return &Rewriter{ClassName: className, ImportPath: importPath}
}

// Rewrite applies all replacements to buf and returns the new buffer and
// whether anything changed. With no replacements the buffer is returned
// untouched and no wiring is injected. Substitution is offset-based, applied
// in reverse offset order, so identical literal text elsewhere in the file is
// never affected and offsets never drift.
func (r *Rewriter) Rewrite(buf string, reps []Replacement) (string, bool) {
	if len(reps) == 0 {
		return buf, false
	}

	sorted := make([]Replacement, len(reps))
	copy(sorted, reps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	out := buf
	for _, rep := range sorted {
		if rep.Start < 0 || rep.End > len(out) || rep.Start >= rep.End {
			continue
		}
		start, end := rep.Start, rep.End
		expr := r.accessor(rep.Key, rep.Args)

		// A display-text literal sitting directly inside Text( … ) widens
		// the span to the whole constructor call.
		if rep.Context == scanner.Text {
			if ws, we, ok := textSpan(out, start, end); ok {
				start, end = ws, we
				expr = "Text(" + expr + ")"
			}
		}
		out = out[:start] + expr + out[end:]
	}

	out = r.ensureImport(out)
	out = r.ensureLocalizationConfig(out)
	return out, true
}

// accessor builds the resource access expression for a key.
func (r *Rewriter) accessor(key string, args []string) string {
	expr := r.ClassName + ".of(context)." + key
	if len(args) > 0 {
		expr += "(" + strings.Join(args, ", ") + ")"
	}
	return expr
}

// textSpan widens [start,end) to cover an enclosing Text( … ) call when the
// literal is its sole, directly wrapped argument.
func textSpan(buf string, start, end int) (int, int, bool) {
	i := start
	for i > 0 && (buf[i-1] == ' ' || buf[i-1] == '\t' || buf[i-1] == '\n') {
		i--
	}
	const ctor = "Text("
	if i < len(ctor) || buf[i-len(ctor):i] != ctor {
		return 0, 0, false
	}
	// Word boundary: reject SelectableText( and friends.
	if p := i - len(ctor); p > 0 && isWordByte(buf[p-1]) {
		return 0, 0, false
	}
	j := end
	for j < len(buf) && (buf[j] == ' ' || buf[j] == '\t' || buf[j] == '\n') {
		j++
	}
	if j >= len(buf) || buf[j] != ')' {
		return 0, 0, false
	}
	return i - len(ctor), j + 1, true
}

// ensureImport inserts the accessor module import after the last existing
// import statement, or at the top of the file when there is none.
func (r *Rewriter) ensureImport(buf string) string {
	importLine := "import '" + r.ImportPath + "';"
	if strings.Contains(buf, importLine) {
		return buf
	}

	insertAt := 0
	searchFrom := 0
	for {
		idx := strings.Index(buf[searchFrom:], "import ")
		if idx < 0 {
			break
		}
		idx += searchFrom
		lineStart := strings.LastIndexByte(buf[:idx], '\n') + 1
		if strings.TrimSpace(buf[lineStart:idx]) == "" {
			if lineEnd := strings.IndexByte(buf[idx:], '\n'); lineEnd >= 0 {
				insertAt = idx + lineEnd + 1
			} else {
				insertAt = len(buf)
			}
		}
		searchFrom = idx + len("import ")
	}

	return buf[:insertAt] + importLine + "\n" + buf[insertAt:]
}

// ensureLocalizationConfig injects delegate and locale wiring into the root
// application constructor when it is not already configured.
func (r *Rewriter) ensureLocalizationConfig(buf string) string {
	if strings.Contains(buf, "localizationsDelegates") {
		return buf
	}
	idx := strings.Index(buf, "MaterialApp(")
	if idx < 0 {
		return buf
	}
	open := idx + len("MaterialApp(")
	snippet := "\n" +
		"      localizationsDelegates: " + r.ClassName + ".localizationsDelegates,\n" +
		"      supportedLocales: " + r.ClassName + ".supportedLocales,"
	return buf[:open] + snippet + buf[open:]
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
