package controllers

import (
	"context"
	"errors"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autobranch/internal/domain/commands"
	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// BranchifyController handles the "branchify" subcommand.
type BranchifyController struct {
	command      commands.Branchify
	packageFiles repositories.PackageFileRepository
	out          io.Writer
}

// NewBranchifyController creates a new BranchifyController writing to stdout.
func NewBranchifyController(
	command commands.Branchify,
	packageFiles repositories.PackageFileRepository,
) *BranchifyController {
	return &BranchifyController{command: command, packageFiles: packageFiles, out: os.Stdout}
}

// GetBind returns the Cobra command metadata for the branchify controller.
func (it *BranchifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "branchify <package-files>",
		Short: "Group detected updates into branch proposals",
		Long: `Read the package files extracted from a repository (YAML or JSON, keyed by
manifest path), flatten them into individual updates and consolidate those
updates into the minimal set of branches.

Duplicate updates inside a branch are dropped (the first one wins) and
updates from the same upstream release that ended up in different branches
are reported in the debug log.`,
	}
}

// Execute loads the settings and package files, then prints the branchify result.
func (it *BranchifyController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		logger.Error("branchify expects exactly one package files argument")
		return
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if onboarded, flagErr := cmd.Flags().GetBool("onboarded"); flagErr == nil && cmd.Flags().Changed("onboarded") {
		settings.RepoIsOnboarded = onboarded
	}
	if fetch, flagErr := cmd.Flags().GetBool("fetch-release-notes"); flagErr == nil && cmd.Flags().Changed("fetch-release-notes") {
		settings.FetchReleaseNotes = fetch
	}
	if dir, _ := cmd.Flags().GetString("changelog-dir"); dir != "" {
		settings.ChangelogDir = dir
	}

	packageFiles, err := it.packageFiles.Load(args[0])
	if err != nil {
		logger.Errorf("failed to load package files: %v", err)
		return
	}

	result, err := it.command.Execute(context.Background(), settings, packageFiles)
	if err != nil {
		logger.Errorf("Branchify failed: %v", err)
		return
	}

	format, _ := cmd.Flags().GetString("output")
	if printErr := NewResultPrinter(it.out, format).Print(result); printErr != nil {
		logger.Errorf("failed to print result: %v", printErr)
	}
}

// AddFlags adds the branchify-specific flags to the given Cobra command.
func (it *BranchifyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("onboarded", false, "Treat the repository as onboarded (overrides repo_is_onboarded)")
	cmd.Flags().Bool("fetch-release-notes", false, "Embed release notes (overrides fetch_release_notes)")
	cmd.Flags().String("changelog-dir", "", "Directory holding mirrored changelogs (overrides changelog_dir)")
	cmd.Flags().StringP("output", "o", formatText, "Output format (text, json, yaml)")
}

// loadSettings reads --config, falls back to the default locations and finally
// to built-in defaults when no file exists.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if errors.Is(err, entities.ErrConfigNotFound) {
			logger.Debug("No config file found, using defaults")
			return entities.NewDefaultSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
