package flattener

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
	"github.com/rios0rios0/autobranch/internal/domain/repositories"
)

var unsafeBranchChars = regexp.MustCompile(`[^a-z0-9._/-]+`)

// UpdateFlattener turns extracted package files into one Update per dependency
// occurrence and proposed target version.
type UpdateFlattener struct {
	managers repositories.ManagerCatalog
}

var _ repositories.UpdateFlattener = (*UpdateFlattener)(nil)

// NewUpdateFlattener creates a flattener that resolves managers through the given catalog.
func NewUpdateFlattener(managers repositories.ManagerCatalog) *UpdateFlattener {
	return &UpdateFlattener{managers: managers}
}

// Flatten walks package files in path order so the output is stable for identical input.
func (f *UpdateFlattener) Flatten(
	ctx context.Context,
	settings *entities.Settings,
	packageFiles entities.PackageFiles,
) ([]entities.Update, error) {
	var updates []entities.Update

	for _, path := range packageFiles.Paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("flattening %q aborted: %w", path, err)
		}

		for _, pkg := range packageFiles[path] {
			managerName, defaults, ok := f.resolveManager(path, pkg.Manager)
			if !ok {
				logger.Warnf("No manager matches package file %q, skipping %d deps", path, len(pkg.Deps))
				continue
			}
			if !settings.IsManagerEnabled(managerName) {
				logger.Debugf("Manager %q is not enabled, skipping %q", managerName, path)
				continue
			}

			for _, dep := range pkg.Deps {
				for _, target := range dep.Updates {
					updates = append(updates, buildUpdate(settings, path, managerName, defaults, dep, target))
				}
			}
		}
	}

	return updates, nil
}

// resolveManager returns the manager name and its defaults. Named managers that are
// not registered are kept without defaults; unnamed entries must match a fileMatch.
func (f *UpdateFlattener) resolveManager(path, name string) (string, managerDefaults, bool) {
	if name != "" {
		if manager := f.managers.Get(name); manager != nil {
			return name, defaultsOf(manager), true
		}
		logger.Debugf("Manager %q is not registered, using no defaults for %q", name, path)
		return name, managerDefaults{}, true
	}

	manager := f.managers.Detect(path)
	if manager == nil {
		return "", managerDefaults{}, false
	}
	return manager.Name(), defaultsOf(manager), true
}

type managerDefaults struct {
	datasource string
	versioning string
}

func defaultsOf(manager repositories.ManagerRepository) managerDefaults {
	defaults := managerDefaults{versioning: manager.DefaultConfig().Versioning}
	if datasources := manager.SupportedDatasources(); len(datasources) > 0 {
		defaults.datasource = datasources[0]
	}
	return defaults
}

func buildUpdate(
	settings *entities.Settings,
	path, managerName string,
	defaults managerDefaults,
	dep entities.Dependency,
	target entities.DependencyUpdate,
) entities.Update {
	update := entities.Update{
		BranchName:     target.BranchName,
		Manager:        managerName,
		PackageFile:    path,
		DepName:        dep.DepName,
		CurrentValue:   dep.CurrentValue,
		CurrentVersion: dep.CurrentVersion,
		NewValue:       target.NewValue,
		NewVersion:     target.NewVersion,
		SourceURL:      dep.SourceURL,
		Datasource:     dep.Datasource,
		Versioning:     dep.Versioning,
		UpdateType:     target.UpdateType,
		GroupName:      target.GroupName,
	}
	if update.Datasource == "" {
		update.Datasource = defaults.datasource
	}
	if update.Versioning == "" {
		update.Versioning = defaults.versioning
	}
	if update.BranchName == "" {
		update.BranchName = deriveBranchName(settings.BranchPrefix, managerName, dep.DepName, target.GroupName)
	}
	return update
}

// deriveBranchName builds "<prefix><slug>" from the group name, the dep name or
// the manager name, whichever is set first.
func deriveBranchName(prefix, managerName, depName, groupName string) string {
	topic := groupName
	if topic == "" {
		topic = depName
	}
	if topic == "" {
		topic = managerName
	}

	slug := unsafeBranchChars.ReplaceAllString(strings.ToLower(topic), "-")
	slug = strings.Trim(slug, "-/.")
	return prefix + slug
}
