package pubspec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// requiredDeps are the localization entries the generated accessors rely on.
var requiredDeps = []string{"flutter_localizations", "intl"}

type manifest struct {
	Name         string         `yaml:"name"`
	Dependencies map[string]any `yaml:"dependencies"`
}

// CheckDependencies reads pubspec.yaml under root and returns the required
// localization dependencies that are not declared. A missing or unreadable
// manifest is an error; missing dependencies are advisory and left to the
// caller to report.
func CheckDependencies(root string) ([]string, error) {
	path := filepath.Join(root, "pubspec.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	var missing []string
	for _, dep := range requiredDeps {
		if _, ok := m.Dependencies[dep]; !ok {
			missing = append(missing, dep)
		}
	}
	return missing, nil
}
