package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/runbookops/runbook-guard/pkg/constants"
	"github.com/runbookops/runbook-guard/pkg/logger"
	"github.com/runbookops/runbook-guard/pkg/runbook"
)

var configLog = logger.New("cli:config")

// Config is the optional repository-level configuration read from
// .runbook-guard.yml at the workspace root. A missing file yields defaults;
// a malformed file is a configuration error that aborts the run.
type Config struct {
	// ExcludedDirs are directory names skipped during scope discovery.
	ExcludedDirs []string `yaml:"excludedDirs"`
	// Analyzer overrides the PowerShell executable used for parsing and
	// static analysis.
	Analyzer string `yaml:"analyzer"`
}

// LoadConfig reads the repo configuration, falling back to defaults when
// the file does not exist.
func LoadConfig(root string) (*Config, error) {
	config := &Config{ExcludedDirs: runbook.DefaultExcludedDirs()}

	path := filepath.Join(root, constants.ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		configLog.Printf("No %s found, using defaults", constants.ConfigFileName)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", constants.ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", constants.ConfigFileName, err)
	}
	if len(config.ExcludedDirs) == 0 {
		config.ExcludedDirs = runbook.DefaultExcludedDirs()
	}
	configLog.Printf("Loaded config: excluded_dirs=%v, analyzer=%q", config.ExcludedDirs, config.Analyzer)
	return config, nil
}

// ResolveAnalyzer picks the analyzer executable: the --analyzer flag wins,
// then the RUNBOOK_GUARD_ANALYZER environment variable, then the repo
// config, then the default.
func ResolveAnalyzer(flagValue string, config *Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(constants.AnalyzerEnvVar); env != "" {
		return env
	}
	if config.Analyzer != "" {
		return config.Analyzer
	}
	return constants.DefaultAnalyzerExecutable
}
