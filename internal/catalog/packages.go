package catalog

import "github.com/Black-png/trackers-api/internal/entity"

type Tier struct {
	Name       string
	Level      int
	Operations []string
}

// Tiers lists the commercial packages from the smallest to the largest.
// Starter through Enterprise form a strict superset chain; the Complete
// tiers are granted through the dedicated Complete operation instead.
func Tiers() []Tier {
	starter := []string{
		entity.OperationOEE,
		entity.OperationJob,
		entity.OperationAuxiliary,
		entity.OperationOperation,
		entity.OperationMasterData,
	}
	base := with(starter, entity.OperationDowntime, entity.OperationRejection, entity.OperationShift)
	baseEnergy := with(base, entity.OperationEnergy)
	advanced := with(baseEnergy, entity.OperationMaintenance, entity.OperationInspection)
	professional := with(advanced, entity.OperationReport, entity.OperationNotification)
	enterprise := with(professional, entity.OperationGlobalDashboard)

	return []Tier{
		{Name: entity.PackageStarter, Level: 1, Operations: starter},
		{Name: entity.PackageBase, Level: 2, Operations: base},
		{Name: entity.PackageBaseEnergy, Level: 3, Operations: baseEnergy},
		{Name: entity.PackageAdvanced, Level: 4, Operations: advanced},
		{Name: entity.PackageProfessional, Level: 5, Operations: professional},
		{Name: entity.PackageEnterprise, Level: 6, Operations: enterprise},
		{Name: entity.PackageComplete, Level: 7, Operations: []string{entity.OperationComplete}},
		{Name: entity.PackageCompleteEnergy, Level: 8, Operations: []string{entity.OperationComplete, entity.OperationEnergy}},
	}
}

// Operations returns every operation referenced by a tier, in first-seen order.
func Operations() []string {
	var (
		ops  []string
		seen = make(map[string]bool)
	)

	for _, t := range Tiers() {
		for _, op := range t.Operations {
			if seen[op] {
				continue
			}

			seen[op] = true
			ops = append(ops, op)
		}
	}

	return ops
}

func with(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)

	return append(out, extra...)
}
