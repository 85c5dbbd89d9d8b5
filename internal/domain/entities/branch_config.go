package entities

// BranchConfig is one finalized branch proposal.
type BranchConfig struct {
	BranchName      string       `json:"branchName"           yaml:"branchName"`
	Title           string       `json:"title"                yaml:"title"`
	Manager         string       `json:"manager"              yaml:"manager"`
	Managers        []string     `json:"managers"             yaml:"managers"`
	DepName         string       `json:"depName,omitempty"    yaml:"depName,omitempty"`
	NewValue        string       `json:"newValue,omitempty"   yaml:"newValue,omitempty"`
	NewVersion      string       `json:"newVersion,omitempty" yaml:"newVersion,omitempty"`
	SourceURL       string       `json:"sourceUrl,omitempty"  yaml:"sourceUrl,omitempty"`
	GroupName       string       `json:"groupName,omitempty"  yaml:"groupName,omitempty"`
	HasReleaseNotes bool         `json:"hasReleaseNotes"      yaml:"hasReleaseNotes"`
	Upgrades        []Update     `json:"upgrades"             yaml:"upgrades"`
	PackageFiles    PackageFiles `json:"-"                    yaml:"-"`
}

// CrossSourceSplit describes one upstream release whose updates ended up in
// more than one branch.
type CrossSourceSplit struct {
	SourceURL  string
	NewVersion string
	// Branches maps each branch name to the depName that branch was created for.
	Branches map[string]string
	// BranchOrder keeps the branch names in the order they were found.
	BranchOrder []string
}

// ValidationMessage is an error or warning accumulated while preparing a run.
type ValidationMessage struct {
	Topic   string `json:"topic"   yaml:"topic"   hcl:"topic"`
	Message string `json:"message" yaml:"message" hcl:"message"`
}

// BranchifyResult is what the branchify engine returns to its caller.
type BranchifyResult struct {
	Errors     []ValidationMessage `json:"errors"     yaml:"errors"`
	Warnings   []ValidationMessage `json:"warnings"   yaml:"warnings"`
	Branches   []BranchConfig      `json:"branches"   yaml:"branches"`
	BranchList []string            `json:"branchList" yaml:"branchList"`
}
