package entities

import "sort"

// PackageFiles maps a manifest path to the package entries a manager extracted from it.
type PackageFiles map[string][]PackageFile

// Paths returns the manifest paths in lexical order.
func (p PackageFiles) Paths() []string {
	paths := make([]string, 0, len(p))
	for path := range p {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// PackageFile is what one manager detected in one manifest.
type PackageFile struct {
	Manager string       `json:"manager,omitempty" yaml:"manager,omitempty"`
	Deps    []Dependency `json:"deps"              yaml:"deps"`
}

// Dependency is a single dependency reference inside a manifest.
type Dependency struct {
	DepName        string             `json:"depName"                  yaml:"depName"`
	CurrentValue   string             `json:"currentValue,omitempty"   yaml:"currentValue,omitempty"`
	CurrentVersion string             `json:"currentVersion,omitempty" yaml:"currentVersion,omitempty"`
	SourceURL      string             `json:"sourceUrl,omitempty"      yaml:"sourceUrl,omitempty"`
	Datasource     string             `json:"datasource,omitempty"     yaml:"datasource,omitempty"`
	Versioning     string             `json:"versioning,omitempty"     yaml:"versioning,omitempty"`
	Updates        []DependencyUpdate `json:"updates,omitempty"        yaml:"updates,omitempty"`
}

// DependencyUpdate is one proposed target for a Dependency.
type DependencyUpdate struct {
	BranchName string `json:"branchName,omitempty" yaml:"branchName,omitempty"`
	NewValue   string `json:"newValue"             yaml:"newValue"`
	NewVersion string `json:"newVersion,omitempty" yaml:"newVersion,omitempty"`
	UpdateType string `json:"updateType,omitempty" yaml:"updateType,omitempty"`
	GroupName  string `json:"groupName,omitempty"  yaml:"groupName,omitempty"`
}
