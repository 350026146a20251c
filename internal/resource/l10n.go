package resource

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// L10nConfig is the generator configuration consumed by the external
// localization code generator.
type L10nConfig struct {
	ArbDir                 string `yaml:"arb-dir"`
	TemplateArbFile        string `yaml:"template-arb-file"`
	OutputClass            string `yaml:"output-class"`
	OutputLocalizationFile string `yaml:"output-localization-file"`
	OutputDir              string `yaml:"output-dir"`
	SyntheticPackage       bool   `yaml:"synthetic-package"`
	NullableGetter         bool   `yaml:"nullable-getter"`
}

// WriteL10nConfig writes l10n.yaml at the project root. An existing file is
// preserved untouched: users hand-tune it and repeated runs must stay
// idempotent.
func WriteL10nConfig(root string, cfg L10nConfig) error {
	path := filepath.Join(root, "l10n.yaml")

	if _, err := os.Stat(path); err == nil {
		log.Info().Str("path", path).Msg("Generator config already exists, keeping it")
		return nil
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal generator config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write generator config: %w", err)
	}

	log.Info().Str("path", path).Msg("Generator config written")
	return nil
}
