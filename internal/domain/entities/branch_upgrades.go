package entities

// BranchUpgrades groups updates by branch name. Branch names keep the order in
// which they were first seen, and within a branch the most recently added
// update comes first.
type BranchUpgrades struct {
	names    []string
	upgrades map[string][]Update
}

// NewBranchUpgrades creates an empty grouping.
func NewBranchUpgrades() *BranchUpgrades {
	return &BranchUpgrades{
		upgrades: make(map[string][]Update),
	}
}

// GroupUpdates builds a BranchUpgrades from the flattened updates in order.
func GroupUpdates(updates []Update) *BranchUpgrades {
	groups := NewBranchUpgrades()
	for _, u := range updates {
		groups.Add(u)
	}
	return groups
}

// Add prepends the update to the group of its branch, creating the group when needed.
func (b *BranchUpgrades) Add(update Update) {
	existing, ok := b.upgrades[update.BranchName]
	if !ok {
		b.names = append(b.names, update.BranchName)
	}

	grouped := make([]Update, 0, len(existing)+1)
	grouped = append(grouped, update)
	grouped = append(grouped, existing...)
	b.upgrades[update.BranchName] = grouped
}

// Names returns the branch names in first-seen order.
func (b *BranchUpgrades) Names() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Get returns the updates grouped under the given branch name.
func (b *BranchUpgrades) Get(branchName string) []Update {
	return b.upgrades[branchName]
}

// Set replaces the updates of an existing branch. Unknown branch names are ignored
// so that collaborators cannot introduce branches after grouping.
func (b *BranchUpgrades) Set(branchName string, updates []Update) {
	if _, ok := b.upgrades[branchName]; !ok {
		return
	}
	b.upgrades[branchName] = updates
}

// Len returns the number of branches.
func (b *BranchUpgrades) Len() int {
	return len(b.names)
}
