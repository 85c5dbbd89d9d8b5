package commands

// DedupeUpgrades exports dedupeUpgrades for testing.
var DedupeUpgrades = dedupeUpgrades //nolint:gochecknoglobals // test export

// FindCrossSourceSplits exports findCrossSourceSplits for testing.
var FindCrossSourceSplits = findCrossSourceSplits //nolint:gochecknoglobals // test export
