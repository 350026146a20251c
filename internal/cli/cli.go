package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arb-extractor/internal/config"
	"arb-extractor/internal/extractor"
	"arb-extractor/internal/gen"
	"arb-extractor/internal/pubspec"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "arb-extractor",
		Short: "Externalize hardcoded UI strings into ARB resources",
		Long:  "Scans a Flutter project for hardcoded UI strings, derives stable keys and placeholder templates, rewrites sources to use generated localization accessors, and emits the ARB resource and l10n.yaml generator config.",
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(doctorCmd())
	rootCmd.AddCommand(genCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var (
		rewrite   bool
		runGen    bool
		checkDeps bool
	)

	cmd := &cobra.Command{
		Use:   "extract <directory>",
		Short: "Scan sources, build the resource table, and emit ARB output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], rewrite, runGen, checkDeps)
		},
	}

	cmd.Flags().BoolVar(&rewrite, "rewrite", false, "Rewrite source files in place to use accessors")
	cmd.Flags().BoolVar(&runGen, "run-gen", false, "Invoke 'flutter gen-l10n' after extraction")
	cmd.Flags().BoolVar(&checkDeps, "check-deps", false, "Check pubspec.yaml for localization dependencies first")
	cmd.Flags().String("class-name", "", "Generated accessor class name")
	cmd.Flags().String("import-path", "", "Import path for the generated accessor module")
	cmd.Flags().String("locale", "", "Locale identifier written to the resource file")
	cmd.Flags().String("arb-dir", "", "Resource directory relative to the project root")
	cmd.Flags().String("template-arb-file", "", "Resource file name")
	cmd.Flags().String("output-dir", "", "Directory for generated accessor code")
	cmd.Flags().String("output-file", "", "Generated accessor file name")
	cmd.Flags().Int("workers", 0, "Parallel scan workers")

	return cmd
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <directory>",
		Short: "Check the project manifest for localization dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(args[0])
		},
	}
}

func genCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen <directory>",
		Short: "Run the external localization generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()
			gen.Run(ctx, args[0])
			return nil
		},
	}
}

// runExtract handles the `extract` command.
func runExtract(cmd *cobra.Command, root string, rewrite, runGen, checkDeps bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	applyFlags(cmd, cfg)

	if checkDeps {
		if err := reportMissingDeps(root); err != nil {
			return err
		}
	}

	ext := extractor.New(cfg)
	summary, err := ext.Run(ctx, root, rewrite)
	if err != nil {
		return err
	}

	if runGen && rewrite && summary.FilesModified > 0 {
		gen.Run(ctx, root)
	}

	fmt.Printf("Scanned %d files, modified %d, emitted %d resources\n",
		summary.FilesScanned, summary.FilesModified, summary.Resources)
	return nil
}

// runDoctor handles the `doctor` command.
func runDoctor(root string) error {
	return reportMissingDeps(root)
}

// reportMissingDeps runs the advisory dependency check. A missing manifest is
// fatal; missing dependencies only warn.
func reportMissingDeps(root string) error {
	missing, err := pubspec.CheckDependencies(root)
	if err != nil {
		return fmt.Errorf("dependency check: %w", err)
	}
	for _, dep := range missing {
		log.Warn().Str("dependency", dep).Msg("Missing localization dependency in pubspec.yaml")
	}
	if len(missing) == 0 {
		log.Info().Msg("All localization dependencies present")
	}
	return nil
}

// applyFlags overrides config fields from explicitly set CLI flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("class-name"); v != "" {
		cfg.ClassName = v
	}
	if v, _ := cmd.Flags().GetString("import-path"); v != "" {
		cfg.ImportPath = v
	}
	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		cfg.Locale = v
	}
	if v, _ := cmd.Flags().GetString("arb-dir"); v != "" {
		cfg.ArbDir = v
	}
	if v, _ := cmd.Flags().GetString("template-arb-file"); v != "" {
		cfg.TemplateArbFile = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("output-file"); v != "" {
		cfg.OutputFile = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.WorkerCount = v
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
