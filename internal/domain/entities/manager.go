package entities

// ManagerConfig is the default configuration a manager plugin contributes.
type ManagerConfig struct {
	FileMatch          []string `json:"fileMatch"                    yaml:"fileMatch"`
	Versioning         string   `json:"versioning,omitempty"         yaml:"versioning,omitempty"`
	CommitMessageTopic string   `json:"commitMessageTopic,omitempty" yaml:"commitMessageTopic,omitempty"`
	PinDigests         *bool    `json:"pinDigests,omitempty"         yaml:"pinDigests,omitempty"`
}

// ProgrammingLanguage identifies the ecosystem a manager belongs to.
type ProgrammingLanguage string

const (
	LanguageNone   ProgrammingLanguage = ""
	LanguagePython ProgrammingLanguage = "python"
)
