package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func innerTexts(lits []RawLiteral) []string {
	out := make([]string, len(lits))
	for i, l := range lits {
		out[i] = l.InnerText
	}
	return out
}

func TestScanFindsBothQuoteStyles(t *testing.T) {
	lits := Scan(`f("double", 'single')`)

	assert.Equal(t, []string{"double", "single"}, innerTexts(lits))
}

func TestScanRecordsOffsets(t *testing.T) {
	buf := `Text('Welcome')`
	lits := Scan(buf)

	require.Len(t, lits, 1)
	assert.Equal(t, "'Welcome'", lits[0].OriginalText)
	assert.Equal(t, "'Welcome'", buf[lits[0].Start:lits[0].End])
}

func TestScanSkipsImportExportPartLines(t *testing.T) {
	buf := "import 'package:flutter/material.dart';\n" +
		"export 'src/widgets.dart';\n" +
		"part 'home.g.dart';\n" +
		"var greeting = 'Hello';\n"
	lits := Scan(buf)

	assert.Equal(t, []string{"Hello"}, innerTexts(lits))
}

func TestScanSkipsStructuralLinesWithoutSpace(t *testing.T) {
	buf := "import'package:flutter/material.dart';\n" +
		"export'src/widgets.dart';\n" +
		"part'home.g.dart';\n" +
		"var greeting = 'Hello';\n"
	lits := Scan(buf)

	assert.Equal(t, []string{"Hello"}, innerTexts(lits))
}

func TestScanKeepsWordsStartingWithStructuralKeywords(t *testing.T) {
	// "important" begins with "import" but is not a declaration.
	lits := Scan("important = 'Read me';\n")

	assert.Equal(t, []string{"Read me"}, innerTexts(lits))
}

func TestScanSkipsTitledContainerStrings(t *testing.T) {
	buf := `Drawer(child: ListTile(title: 'Menu entry'))`
	lits := Scan(buf)

	assert.Empty(t, lits)
}

func TestScanKeepsTitleOutsideTitledContainers(t *testing.T) {
	buf := `AppBar(title: 'Home')`
	lits := Scan(buf)

	require.Len(t, lits, 1)
	assert.Equal(t, Title, lits[0].Context)
}

func TestScanContextClassification(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want ContextTag
	}{
		{"text constructor", `Text('Welcome')`, Text},
		{"text constructor multiline", "Text(\n  'Welcome')", Text},
		{"hint text", `TextField(decoration: InputDecoration(hintText: 'Your name'))`, HintText},
		{"label text", `InputDecoration(labelText: 'Email address')`, LabelText},
		{"snack bar", `SnackBar(content: 'Saved again')`, SnackBar},
		{"dialog", `AlertDialog(content: 'Are you sure')`, Dialog},
		{"button", `ElevatedButton(tooltip: 'Press me')`, ButtonText},
		{"no token", `final greeting = 'Good morning';`, General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits := Scan(tt.buf)
			require.Len(t, lits, 1)
			assert.Equal(t, tt.want, lits[0].Context)
		})
	}
}

func TestScanTextConstructorBeatsContainerToken(t *testing.T) {
	lits := Scan(`AppBar(title: Text('Home'))`)

	require.Len(t, lits, 1)
	assert.Equal(t, Text, lits[0].Context)
}

func TestScanToleratesEscapedDelimiters(t *testing.T) {
	lits := Scan(`Text('don\'t stop')`)

	require.Len(t, lits, 1)
	assert.Equal(t, `don\'t stop`, lits[0].InnerText)
}

func TestScanOverlappingGrammarsCollapse(t *testing.T) {
	// The apostrophes open a bogus single-quote span across the two double
	// quoted literals; only the two real literals must survive.
	lits := Scan(`f("it's A", "don't B")`)

	require.Len(t, lits, 2)
	assert.Equal(t, `it's A`, lits[0].InnerText)
	assert.Equal(t, `don't B`, lits[1].InnerText)
}
