package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// DefaultBranchPrefix is used when the configuration does not set branch_prefix.
const DefaultBranchPrefix = "autobranch/"

// ErrConfigNotFound is returned when no configuration file exists in the default locations.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// Settings is the repository-level configuration of a branchify run.
type Settings struct {
	RepoIsOnboarded   bool                `yaml:"repo_is_onboarded"`
	FetchReleaseNotes bool                `yaml:"fetch_release_notes"`
	BranchList        []string            `yaml:"branch_list"`
	BranchPrefix      string              `yaml:"branch_prefix"`
	ChangelogDir      string              `yaml:"changelog_dir"`
	EnabledManagers   []string            `yaml:"enabled_managers"`
	Errors            []ValidationMessage `yaml:"errors"`
	Warnings          []ValidationMessage `yaml:"warnings"`
}

// hclSettings mirrors Settings for HCL files, where messages are blocks.
type hclSettings struct {
	RepoIsOnboarded   bool                `hcl:"repo_is_onboarded,optional"`
	FetchReleaseNotes bool                `hcl:"fetch_release_notes,optional"`
	BranchList        []string            `hcl:"branch_list,optional"`
	BranchPrefix      string              `hcl:"branch_prefix,optional"`
	ChangelogDir      string              `hcl:"changelog_dir,optional"`
	EnabledManagers   []string            `hcl:"enabled_managers,optional"`
	Errors            []ValidationMessage `hcl:"error,block"`
	Warnings          []ValidationMessage `hcl:"warning,block"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no configuration file is given.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file. Files ending in ".hcl" are
// decoded as HCL with an "env" variable holding the process environment;
// everything else is decoded as YAML (which also accepts JSON).
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings *Settings
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		settings, err = decodeHCL(path, data)
	} else {
		settings, err = decodeYAML(data)
	}
	if err != nil {
		return nil, err
	}

	settings.applyDefaults()
	settings.validate()
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".autobranch.yaml",
		".autobranch.yml",
		".autobranch.hcl",
		"autobranch.yaml",
		"autobranch.yml",
		"autobranch.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// IsManagerEnabled reports whether updates from the given manager should be processed.
// An empty enabled_managers list enables every manager.
func (s *Settings) IsManagerEnabled(name string) bool {
	if len(s.EnabledManagers) == 0 {
		return true
	}
	return slices.Contains(s.EnabledManagers, name)
}

func decodeYAML(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings.BranchPrefix = resolveEnv(settings.BranchPrefix)
	settings.ChangelogDir = resolveEnv(settings.ChangelogDir)
	return &settings, nil
}

func decodeHCL(path string, data []byte) (*Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %w", diags)
	}

	var raw hclSettings
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": environmentObject()},
	}
	if decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, &raw); decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %w", decodeDiags)
	}

	return &Settings{
		RepoIsOnboarded:   raw.RepoIsOnboarded,
		FetchReleaseNotes: raw.FetchReleaseNotes,
		BranchList:        raw.BranchList,
		BranchPrefix:      raw.BranchPrefix,
		ChangelogDir:      raw.ChangelogDir,
		EnabledManagers:   raw.EnabledManagers,
		Errors:            raw.Errors,
		Warnings:          raw.Warnings,
	}, nil
}

// environmentObject exposes the process environment to HCL as env.NAME.
func environmentObject() cty.Value {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return cty.ObjectVal(vars)
}

// resolveEnv expands environment variable references (${VAR}).
func resolveEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) applyDefaults() {
	if s.BranchPrefix == "" {
		s.BranchPrefix = DefaultBranchPrefix
	}
	if s.Errors == nil {
		s.Errors = []ValidationMessage{}
	}
	if s.Warnings == nil {
		s.Warnings = []ValidationMessage{}
	}
}

// validate records non-fatal configuration problems as warnings.
func (s *Settings) validate() {
	if s.RepoIsOnboarded && len(s.BranchList) > 0 {
		s.Warnings = append(s.Warnings, ValidationMessage{
			Topic:   "branch_list",
			Message: "branch_list is ignored once the repository is onboarded",
		})
	}
	if s.FetchReleaseNotes && s.ChangelogDir == "" {
		s.Warnings = append(s.Warnings, ValidationMessage{
			Topic:   "fetch_release_notes",
			Message: "fetch_release_notes is enabled but changelog_dir is empty; no release notes will be found",
		})
	}
}
