package extractor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arb-extractor/internal/config"
)

const mainDart = `import 'package:flutter/material.dart';

void main() => runApp(const MyApp());

class MyApp extends StatelessWidget {
  @override
  Widget build(BuildContext context) {
    return MaterialApp(
      home: Scaffold(
        body: Column(
          children: [
            Text('Welcome'),
            Text('Hello ${_name}'),
          ],
        ),
      ),
    );
  }
}
`

func testConfig() *config.Config {
	return &config.Config{
		ClassName:       "AppLocalizations",
		ImportPath:      "package:flutter_gen/gen_l10n/app_localizations.dart",
		Locale:          "en",
		ArbDir:          "lib/l10n",
		TemplateArbFile: "app_en.arb",
		OutputDir:       "lib/l10n/gen",
		OutputFile:      "app_localizations.dart",
		WorkerCount:     4,
	}
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRunEndToEndWithRewrite(t *testing.T) {
	root := writeProject(t, map[string]string{
		"lib/main.dart": mainDart,
	})

	summary, err := New(testConfig()).Run(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesScanned)
	assert.Equal(t, 1, summary.FilesModified)
	assert.Equal(t, 2, summary.Resources)

	arb, err := os.ReadFile(filepath.Join(root, "lib/l10n/app_en.arb"))
	require.NoError(t, err)
	assert.Contains(t, string(arb), `"welcome": "Welcome"`)
	assert.Contains(t, string(arb), `"hello": "Hello {_name}"`)
	assert.Contains(t, string(arb), `"_name"`)

	rewritten, err := os.ReadFile(filepath.Join(root, "lib/main.dart"))
	require.NoError(t, err)
	out := string(rewritten)
	assert.Contains(t, out, "Text(AppLocalizations.of(context).welcome)")
	assert.Contains(t, out, "Text(AppLocalizations.of(context).hello(_name))")
	assert.Equal(t, 1, strings.Count(out, "import 'package:flutter_gen/gen_l10n/app_localizations.dart';"))
	assert.Contains(t, out, "localizationsDelegates: AppLocalizations.localizationsDelegates,")
	assert.Contains(t, out, "supportedLocales: AppLocalizations.supportedLocales,")

	_, err = os.Stat(filepath.Join(root, "l10n.yaml"))
	assert.NoError(t, err)
}

func TestRunWithoutRewriteLeavesSourcesUntouched(t *testing.T) {
	root := writeProject(t, map[string]string{
		"lib/main.dart": mainDart,
	})

	summary, err := New(testConfig()).Run(context.Background(), root, false)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.FilesModified)
	assert.Equal(t, 2, summary.Resources)

	data, err := os.ReadFile(filepath.Join(root, "lib/main.dart"))
	require.NoError(t, err)
	assert.Equal(t, mainDart, string(data))
}

func TestRunNoEligibleLiterals(t *testing.T) {
	src := "import 'package:flutter/material.dart';\n\nvar p = 'assets/logo.png';\n"
	root := writeProject(t, map[string]string{
		"lib/assets.dart": src,
	})

	summary, err := New(testConfig()).Run(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesScanned)
	assert.Equal(t, 0, summary.FilesModified)
	assert.Equal(t, 0, summary.Resources)

	data, err := os.ReadFile(filepath.Join(root, "lib/assets.dart"))
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestRunDeduplicatesAcrossFiles(t *testing.T) {
	root := writeProject(t, map[string]string{
		"lib/a.dart": "var x = Text('Save changes');\n",
		"lib/b.dart": "var y = Text('Save changes');\n",
	})

	summary, err := New(testConfig()).Run(context.Background(), root, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.FilesScanned)
	assert.Equal(t, 1, summary.Resources)
}

func TestRunDeterministicOutput(t *testing.T) {
	files := map[string]string{
		"lib/a.dart": "x = Text('Zebra crossing');\ny = Text('Apple pie');\n",
		"lib/b.dart": "z = Text('Mango juice');\n",
	}

	run := func() string {
		root := writeProject(t, files)
		_, err := New(testConfig()).Run(context.Background(), root, false)
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(root, "lib/l10n/app_en.arb"))
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, run(), run())
}

func TestRunCancelledContext(t *testing.T) {
	files := make(map[string]string, 64)
	for i := 0; i < 64; i++ {
		files[filepath.Join("lib", string(rune('a'+i%26))+string(rune('a'+i/26))+".dart")] =
			"x = Text('Screen text');\n"
	}
	root := writeProject(t, files)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unprocessed inputs come back as zero-value tasks; the run must skip
	// them instead of dereferencing a nil scan result.
	summary, err := New(testConfig()).Run(ctx, root, false)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.FilesModified)
	assert.LessOrEqual(t, summary.FilesScanned, 64)
}

func TestRunMissingRootIsFatal(t *testing.T) {
	_, err := New(testConfig()).Run(context.Background(), filepath.Join(t.TempDir(), "nope"), false)
	assert.Error(t, err)
}

func TestKeyCollisionAcrossDistinctContent(t *testing.T) {
	root := writeProject(t, map[string]string{
		"lib/a.dart": "x = Text('Hello!');\ny = Text('Hello?');\n",
	})

	ext := New(testConfig())
	_, err := ext.Run(context.Background(), root, false)
	require.NoError(t, err)

	assert.True(t, ext.Table().Has("hello"))
	assert.True(t, ext.Table().Has("hello_1"))
}
