package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all extraction settings. Defaults come from the environment
// (optionally via .env); CLI flags override individual fields.
type Config struct {
	// ClassName is the generated accessor class referenced by rewrites.
	ClassName string
	// ImportPath is the accessor module import inserted into rewritten files.
	ImportPath string
	// Locale is written to the resource file's @@locale field.
	Locale string
	// ArbDir is the resource directory, relative to the project root.
	ArbDir string
	// TemplateArbFile is the resource file name inside ArbDir.
	TemplateArbFile string
	// OutputDir is where the generator writes accessor code.
	OutputDir string
	// OutputFile is the generated accessor file name.
	OutputFile string
	// WorkerCount bounds the parallel scan phase.
	WorkerCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		ClassName:       getEnv("ARB_OUTPUT_CLASS", "AppLocalizations"),
		ImportPath:      getEnv("ARB_IMPORT_PATH", "package:flutter_gen/gen_l10n/app_localizations.dart"),
		Locale:          getEnv("ARB_LOCALE", "en"),
		ArbDir:          getEnv("ARB_DIR", "lib/l10n"),
		TemplateArbFile: getEnv("ARB_TEMPLATE_FILE", "app_en.arb"),
		OutputDir:       getEnv("ARB_OUTPUT_DIR", "lib/l10n/gen"),
		OutputFile:      getEnv("ARB_OUTPUT_FILE", "app_localizations.dart"),
		WorkerCount:     getEnvInt("WORKER_COUNT", 8),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
