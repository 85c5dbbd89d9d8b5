package entities

// ReleaseNotes is the changelog content embedded into an Update.
type ReleaseNotes struct {
	Project  string           `json:"project"  yaml:"project"`
	Versions []ReleaseVersion `json:"versions" yaml:"versions"`
}

// ReleaseVersion is a single released section of a changelog.
type ReleaseVersion struct {
	Version string `json:"version"        yaml:"version"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Body    string `json:"body"           yaml:"body"`
}
