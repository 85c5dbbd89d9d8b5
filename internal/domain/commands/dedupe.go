package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autobranch/internal/domain/entities"
)

// dedupeUpgrades keeps the first update seen for each (packageFile, depName,
// currentValue) key and reports every later one as a collision. Survivors keep
// the order in which their key was first seen.
func dedupeUpgrades(log logger.FieldLogger, upgrades []entities.Update) []entities.Update {
	kept := make(map[entities.DedupKey]struct{}, len(upgrades))
	deduped := make([]entities.Update, 0, len(upgrades))

	for _, upgrade := range upgrades {
		key := upgrade.Key()
		if _, seen := kept[key]; !seen {
			kept[key] = struct{}{}
			deduped = append(deduped, upgrade)
			continue
		}

		log.WithFields(logger.Fields{
			"manager":      upgrade.Manager,
			"packageFile":  upgrade.PackageFile,
			"depName":      upgrade.DepName,
			"currentValue": upgrade.CurrentValue,
			"thisNewValue": upgrade.NewValue,
		}).Info("Ignoring upgrade collision")
	}

	return deduped
}
