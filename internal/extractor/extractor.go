package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"arb-extractor/internal/config"
	"arb-extractor/internal/filewalker"
	"arb-extractor/internal/filter"
	"arb-extractor/internal/interpolation"
	"arb-extractor/internal/keygen"
	"arb-extractor/internal/resource"
	"arb-extractor/internal/rewriter"
	"arb-extractor/internal/scanner"
	"arb-extractor/internal/textutil"
	"arb-extractor/internal/worker"

	"github.com/rs/zerolog/log"
)

// Summary reports what one extraction run did.
type Summary struct {
	FilesScanned  int
	FilesModified int
	Resources     int
}

// fileScan is the parallel phase's output for one file: the buffer as read
// plus all literal candidates. The sequential phase rewrites from this
// buffer, never re-reading the file.
type fileScan struct {
	path     string
	buf      string
	literals []scanner.RawLiteral
}

// Extractor owns one run's state: the resource table, the content→key cache,
// and the set of modified files. State is passed explicitly, never ambient;
// one Extractor serves exactly one Run.
type Extractor struct {
	cfg      *config.Config
	table    *resource.Table
	keys     *keygen.Generator
	rw       *rewriter.Rewriter
	modified map[string]struct{}
}

func New(cfg *config.Config) *Extractor {
	return &Extractor{
		cfg:      cfg,
		table:    resource.NewTable(),
		keys:     keygen.New(),
		rw:       rewriter.New(cfg.ClassName, cfg.ImportPath),
		modified: make(map[string]struct{}),
	}
}

// Table exposes the accumulated resource table, mainly for emission and
// inspection in tests.
func (e *Extractor) Table() *resource.Table {
	return e.table
}

// Run scans all source files under root, records resources, optionally
// rewrites sources in place, and emits the resource and generator config
// files. Scanning fans out over the worker pool; every table mutation and
// file write happens in the sequential phase afterwards.
func (e *Extractor) Run(ctx context.Context, root string, rewrite bool) (*Summary, error) {
	files, err := filewalker.Walk(root)
	if err != nil {
		return nil, err
	}

	pool := worker.NewPool[string, *fileScan](e.cfg.WorkerCount,
		func(ctx context.Context, path string) (*fileScan, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read source file: %w", err)
			}
			buf := string(data)
			return &fileScan{path: path, buf: buf, literals: scanner.Scan(buf)}, nil
		},
	)
	results := pool.Execute(ctx, files)

	scanned := 0
	for _, res := range results {
		if res.Err != nil {
			log.Warn().Err(res.Err).Str("file", res.Input).Msg("Skipping unreadable file")
			continue
		}
		// Cancellation leaves zero-value tasks for unprocessed inputs.
		if res.Result == nil {
			continue
		}
		scanned++
		e.processFile(res.Result, rewrite)
	}

	arbPath := filepath.Join(root, e.cfg.ArbDir, e.cfg.TemplateArbFile)
	if err := e.table.ExportARB(arbPath, e.cfg.Locale); err != nil {
		return nil, err
	}
	if err := resource.WriteL10nConfig(root, resource.L10nConfig{
		ArbDir:                 e.cfg.ArbDir,
		TemplateArbFile:        e.cfg.TemplateArbFile,
		OutputClass:            e.cfg.ClassName,
		OutputLocalizationFile: e.cfg.OutputFile,
		OutputDir:              e.cfg.OutputDir,
		SyntheticPackage:       false,
		NullableGetter:         false,
	}); err != nil {
		return nil, err
	}

	summary := &Summary{
		FilesScanned:  scanned,
		FilesModified: len(e.modified),
		Resources:     e.table.Len(),
	}
	log.Info().
		Int("scanned", summary.FilesScanned).
		Int("modified", summary.FilesModified).
		Int("resources", summary.Resources).
		Msg("Extraction complete")
	return summary, nil
}

// processFile resolves keys for one file's candidates, records them in the
// table, and rewrites the file when enabled and anything matched.
func (e *Extractor) processFile(fs *fileScan, rewrite bool) {
	var reps []rewriter.Replacement

	for _, lit := range fs.literals {
		if filter.ShouldIgnore(lit.InnerText) {
			continue
		}

		vt := interpolation.Detect(lit.InnerText)
		key := e.keys.Key(lit.InnerText, keyBasis(vt), e.table.Has)

		var placeholders []resource.Placeholder
		for _, v := range vt.Variables {
			placeholders = append(placeholders, resource.Placeholder{
				Name:    v,
				Type:    "String",
				Example: v,
			})
		}
		e.table.Record(key, vt.Template, describe(lit.Context), placeholders)
		logCandidate(lit, key)

		reps = append(reps, rewriter.Replacement{
			Start:   lit.Start,
			End:     lit.End,
			Context: lit.Context,
			Key:     key,
			Args:    vt.Variables,
		})
	}

	if !rewrite || len(reps) == 0 {
		return
	}

	out, changed := e.rw.Rewrite(fs.buf, reps)
	if !changed {
		return
	}
	if err := os.WriteFile(fs.path, []byte(out), 0644); err != nil {
		log.Error().Err(err).Str("file", fs.path).Msg("Write rewritten file failed, skipping")
		return
	}
	e.modified[fs.path] = struct{}{}
	log.Info().
		Str("file", fs.path).
		Int("replacements", len(reps)).
		Msg("File rewritten")
}

var placeholderMarker = regexp.MustCompile(`\{[^}]*\}`)

// keyBasis is the text keys are derived from: the template with placeholder
// markers removed, so variables never leak into key names.
func keyBasis(vt interpolation.VariableTemplate) string {
	if !vt.HasVariables {
		return vt.Template
	}
	return placeholderMarker.ReplaceAllString(vt.Template, "")
}

func describe(tag scanner.ContextTag) string {
	return fmt.Sprintf("String used in a %s context", tag)
}

// logCandidate is a debug hook for tracing individual literals.
func logCandidate(lit scanner.RawLiteral, key string) {
	log.Debug().
		Str("literal", textutil.Truncate(lit.InnerText, 40)).
		Str("key", key).
		Str("context", lit.Context.String()).
		Msg("Candidate recorded")
}
