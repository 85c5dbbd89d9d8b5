//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// UpdateBuilder helps create test updates with a fluent interface.
type UpdateBuilder struct {
	*testkit.BaseBuilder
	branchName   string
	manager      string
	packageFile  string
	depName      string
	currentValue string
	newValue     string
	newVersion   string
	sourceURL    string
	groupName    string
	logJSON      *entities.ReleaseNotes
}

// NewUpdateBuilder creates a new update builder with sensible defaults.
func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		branchName:   "autobranch/lodash",
		manager:      "npm",
		packageFile:  "package.json",
		depName:      "lodash",
		currentValue: "4.0.0",
		newValue:     "4.17.21",
	}
}

// WithBranchName sets the branch name.
func (b *UpdateBuilder) WithBranchName(name string) *UpdateBuilder {
	b.branchName = name
	return b
}

// WithManager sets the manager.
func (b *UpdateBuilder) WithManager(manager string) *UpdateBuilder {
	b.manager = manager
	return b
}

// WithPackageFile sets the package file path.
func (b *UpdateBuilder) WithPackageFile(path string) *UpdateBuilder {
	b.packageFile = path
	return b
}

// WithDepName sets the dependency name.
func (b *UpdateBuilder) WithDepName(name string) *UpdateBuilder {
	b.depName = name
	return b
}

// WithCurrentValue sets the current value.
func (b *UpdateBuilder) WithCurrentValue(value string) *UpdateBuilder {
	b.currentValue = value
	return b
}

// WithNewValue sets the new value.
func (b *UpdateBuilder) WithNewValue(value string) *UpdateBuilder {
	b.newValue = value
	return b
}

// WithNewVersion sets the resolved new version.
func (b *UpdateBuilder) WithNewVersion(version string) *UpdateBuilder {
	b.newVersion = version
	return b
}

// WithSourceURL sets the upstream source URL.
func (b *UpdateBuilder) WithSourceURL(url string) *UpdateBuilder {
	b.sourceURL = url
	return b
}

// WithGroupName sets the group name.
func (b *UpdateBuilder) WithGroupName(name string) *UpdateBuilder {
	b.groupName = name
	return b
}

// WithReleaseNotes sets the embedded release notes.
func (b *UpdateBuilder) WithReleaseNotes(notes *entities.ReleaseNotes) *UpdateBuilder {
	b.logJSON = notes
	return b
}

// Build creates the update (satisfies testkit.Builder interface).
func (b *UpdateBuilder) Build() interface{} {
	return b.BuildUpdate()
}

// BuildUpdate creates the update with a concrete return type.
func (b *UpdateBuilder) BuildUpdate() entities.Update {
	return entities.Update{
		BranchName:   b.branchName,
		Manager:      b.manager,
		PackageFile:  b.packageFile,
		DepName:      b.depName,
		CurrentValue: b.currentValue,
		NewValue:     b.newValue,
		NewVersion:   b.newVersion,
		SourceURL:    b.sourceURL,
		GroupName:    b.groupName,
		LogJSON:      b.logJSON,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *UpdateBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.branchName = "autobranch/lodash"
	b.manager = "npm"
	b.packageFile = "package.json"
	b.depName = "lodash"
	b.currentValue = "4.0.0"
	b.newValue = "4.17.21"
	b.newVersion = ""
	b.sourceURL = ""
	b.groupName = ""
	b.logJSON = nil
	return b
}

// Clone creates a deep copy of the UpdateBuilder.
func (b *UpdateBuilder) Clone() testkit.Builder {
	return &UpdateBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		branchName:   b.branchName,
		manager:      b.manager,
		packageFile:  b.packageFile,
		depName:      b.depName,
		currentValue: b.currentValue,
		newValue:     b.newValue,
		newVersion:   b.newVersion,
		sourceURL:    b.sourceURL,
		groupName:    b.groupName,
		logJSON:      b.logJSON,
	}
}
