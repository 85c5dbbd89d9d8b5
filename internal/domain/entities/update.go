package entities

// Update is one detected change to one dependency reference in one package file.
// Updates are produced by an UpdateFlattener and consumed once by the branchify engine.
type Update struct {
	BranchName     string `json:"branchName"               yaml:"branchName"`
	Manager        string `json:"manager"                  yaml:"manager"`
	PackageFile    string `json:"packageFile"              yaml:"packageFile"`
	DepName        string `json:"depName,omitempty"        yaml:"depName,omitempty"`
	CurrentValue   string `json:"currentValue,omitempty"   yaml:"currentValue,omitempty"`
	CurrentVersion string `json:"currentVersion,omitempty" yaml:"currentVersion,omitempty"`
	NewValue       string `json:"newValue,omitempty"       yaml:"newValue,omitempty"`
	NewVersion     string `json:"newVersion,omitempty"     yaml:"newVersion,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty"      yaml:"sourceUrl,omitempty"`
	Datasource     string `json:"datasource,omitempty"     yaml:"datasource,omitempty"`
	Versioning     string `json:"versioning,omitempty"     yaml:"versioning,omitempty"`
	UpdateType     string `json:"updateType,omitempty"     yaml:"updateType,omitempty"`
	GroupName      string `json:"groupName,omitempty"      yaml:"groupName,omitempty"`

	// LogJSON holds rendered release notes; nil means none were embedded.
	LogJSON *ReleaseNotes `json:"logJSON,omitempty" yaml:"logJSON,omitempty"`
}

// DedupKey identifies the logical change an update represents inside a branch.
type DedupKey struct {
	PackageFile  string
	DepName      string
	CurrentValue string
}

// Key returns the collision key of the update.
func (u Update) Key() DedupKey {
	return DedupKey{
		PackageFile:  u.PackageFile,
		DepName:      u.DepName,
		CurrentValue: u.CurrentValue,
	}
}

// HasReleaseNotes reports whether changelog content was embedded into the update.
func (u Update) HasReleaseNotes() bool {
	return u.LogJSON != nil
}
