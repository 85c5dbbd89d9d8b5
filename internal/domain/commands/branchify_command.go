package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

// Branchify is the interface for the branchify command.
type Branchify interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		packageFiles entities.PackageFiles,
	) (*entities.BranchifyResult, error)
}

// BranchifyCommand consolidates flattened dependency updates into branch proposals:
// group by branch name -> embed release notes -> deduplicate -> build branch configs.
type BranchifyCommand struct {
	flattener  repositories.UpdateFlattener
	changelogs repositories.ChangelogFactory
	generator  BranchConfigGenerator
	log        *logger.Logger
}

// NewBranchifyCommand creates a new BranchifyCommand with its collaborators.
func NewBranchifyCommand(
	flattener repositories.UpdateFlattener,
	changelogs repositories.ChangelogFactory,
	generator BranchConfigGenerator,
	log *logger.Logger,
) *BranchifyCommand {
	return &BranchifyCommand{
		flattener:  flattener,
		changelogs: changelogs,
		generator:  generator,
		log:        log,
	}
}

// Execute runs one consolidation pass. The only errors returned come from the
// flattener or the changelog collaborator; anomalies inside the pass are logged.
func (it *BranchifyCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	packageFiles entities.PackageFiles,
) (*entities.BranchifyResult, error) {
	if settings == nil {
		settings = entities.NewDefaultSettings()
	}

	it.log.Debug("Branchifying upgrades")
	updates, err := it.flattener.Flatten(ctx, settings, packageFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten updates: %w", err)
	}
	it.log.Debugf("%d flattened updates found: %s", len(updates), joinDepNames(updates))

	groups := entities.GroupUpdates(updates)
	it.log.Debugf("Returning %d branch(es)", groups.Len())

	if settings.FetchReleaseNotes {
		if embedErr := it.changelogs(settings.ChangelogDir).Embed(ctx, groups); embedErr != nil {
			return nil, fmt.Errorf("failed to embed changelogs: %w", embedErr)
		}
	}

	branches := make([]entities.BranchConfig, 0, groups.Len())
	for _, branchName := range groups.Names() {
		branchLog := it.log.WithField("branch", branchName)

		upgrades := dedupeUpgrades(branchLog, groups.Get(branchName))
		groups.Set(branchName, upgrades)

		branch := it.generator.Generate(upgrades)
		branch.BranchName = branchName
		branch.PackageFiles = packageFiles
		branches = append(branches, branch)
	}

	it.log.Debugf("repoIsOnboarded=%t", settings.RepoIsOnboarded)
	branchList := append([]string{}, settings.BranchList...)
	if settings.RepoIsOnboarded {
		branchList = make([]string, 0, len(branches))
		for _, branch := range branches {
			branchList = append(branchList, branch.BranchName)
		}
	}

	it.adviseCrossSourceSplits(branches)

	return &entities.BranchifyResult{
		Errors:     append([]entities.ValidationMessage{}, settings.Errors...),
		Warnings:   append([]entities.ValidationMessage{}, settings.Warnings...),
		Branches:   branches,
		BranchList: branchList,
	}, nil
}

// adviseCrossSourceSplits logs upstream releases spread over several branches.
// A scan failure is logged and dropped; it never affects the result.
func (it *BranchifyCommand) adviseCrossSourceSplits(branches []entities.BranchConfig) {
	splits, err := findCrossSourceSplits(branches)
	if err != nil {
		it.log.WithError(err).Debug("Error checking branch duplicates")
		return
	}

	for _, split := range splits {
		it.log.WithFields(logger.Fields{
			"sourceUrl":  split.SourceURL,
			"newVersion": split.NewVersion,
			"branches":   split.Branches,
		}).Debug("Found sourceUrl with multiple branches that should probably be combined into a group")
	}
}

func joinDepNames(updates []entities.Update) string {
	names := make([]string, 0, len(updates))
	for _, u := range updates {
		if u.DepName != "" {
			names = append(names, u.DepName)
		}
	}
	return strings.Join(names, ", ")
}
