package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

const defaultCommitMessageTopic = "dependency {{depName}}"

// BranchConfigGenerator builds the branch-level fields of a deduplicated group.
// BranchName and PackageFiles are owned by the caller and overwritten after the call.
type BranchConfigGenerator interface {
	Generate(upgrades []entities.Update) entities.BranchConfig
}

// TemplateBranchConfigGenerator derives titles from each manager's commit message topic.
type TemplateBranchConfigGenerator struct {
	managers repositories.ManagerCatalog
}

// NewTemplateBranchConfigGenerator creates a generator using the given manager catalog.
func NewTemplateBranchConfigGenerator(managers repositories.ManagerCatalog) *TemplateBranchConfigGenerator {
	return &TemplateBranchConfigGenerator{managers: managers}
}

// Generate takes the representative fields from the first upgrade.
func (g *TemplateBranchConfigGenerator) Generate(upgrades []entities.Update) entities.BranchConfig {
	if len(upgrades) == 0 {
		return entities.BranchConfig{}
	}

	first := upgrades[0]
	branch := entities.BranchConfig{
		Manager:    first.Manager,
		Managers:   managerNames(upgrades),
		DepName:    first.DepName,
		NewValue:   first.NewValue,
		NewVersion: first.NewVersion,
		SourceURL:  first.SourceURL,
		GroupName:  first.GroupName,
		Upgrades:   upgrades,
	}
	for _, upgrade := range upgrades {
		if upgrade.HasReleaseNotes() {
			branch.HasReleaseNotes = true
			break
		}
	}
	branch.Title = g.title(first, distinctDepNames(upgrades))
	return branch
}

func (g *TemplateBranchConfigGenerator) title(first entities.Update, depCount int) string {
	switch {
	case first.GroupName != "":
		return "Update " + first.GroupName
	case depCount > 1:
		return fmt.Sprintf("Update %d dependencies", depCount)
	case depCount == 0:
		return fmt.Sprintf("Update %s dependencies", first.Manager)
	}

	topic := strings.ReplaceAll(g.commitMessageTopic(first.Manager), "{{depName}}", first.DepName)
	target := first.NewVersion
	if target == "" {
		target = first.NewValue
	}
	if target == "" {
		return "Update " + topic
	}
	return fmt.Sprintf("Update %s to %s", topic, target)
}

func (g *TemplateBranchConfigGenerator) commitMessageTopic(managerName string) string {
	if g.managers != nil {
		if manager := g.managers.Get(managerName); manager != nil {
			if topic := manager.DefaultConfig().CommitMessageTopic; topic != "" {
				return topic
			}
		}
	}
	return defaultCommitMessageTopic
}

func managerNames(upgrades []entities.Update) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, 1)
	for _, upgrade := range upgrades {
		if _, ok := seen[upgrade.Manager]; ok || upgrade.Manager == "" {
			continue
		}
		seen[upgrade.Manager] = struct{}{}
		names = append(names, upgrade.Manager)
	}
	sort.Strings(names)
	return names
}

func distinctDepNames(upgrades []entities.Update) int {
	seen := make(map[string]struct{})
	for _, upgrade := range upgrades {
		if upgrade.DepName != "" {
			seen[upgrade.DepName] = struct{}{}
		}
	}
	return len(seen)
}
