package seeder

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
)

func (s *Seeder) seedPackages(ctx context.Context) (int, error) {
	tiers := catalog.Tiers()
	desired := make([]entity.Package, 0, len(tiers))

	for _, t := range tiers {
		desired = append(desired, entity.Package{ID: s.newID(), Name: t.Name, Level: t.Level})
	}

	return reconcile(ctx, s.store.Packages, s.store.InsertPackages, desired,
		func(p entity.Package) string { return p.Name })
}

func (s *Seeder) seedOperations(ctx context.Context) (int, error) {
	desired := named(catalog.Operations(), func(name string) entity.Operation {
		return entity.Operation{ID: s.newID(), Name: name}
	})

	return reconcile(ctx, s.store.Operations, s.store.InsertOperations, desired,
		func(o entity.Operation) string { return o.Name })
}

// seedPackageOperations grants the tier operations only while the
// entitlement table is empty. Once any grant exists the table is owned by
// the tenants and is left alone, even if a tier is incomplete.
func (s *Seeder) seedPackageOperations(ctx context.Context) (int, error) {
	existing, err := s.store.PackageOperations(ctx)
	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		return 0, nil
	}

	packages, err := s.store.Packages(ctx)
	if err != nil {
		return 0, err
	}

	operations, err := s.store.Operations(ctx)
	if err != nil {
		return 0, err
	}

	packageIDs := make(map[string]uuid.UUID, len(packages))
	for _, p := range packages {
		packageIDs[p.Name] = p.ID
	}

	operationIDs := make(map[string]uuid.UUID, len(operations))
	for _, o := range operations {
		operationIDs[o.Name] = o.ID
	}

	var grants []entity.PackageOperation

	for _, tier := range catalog.Tiers() {
		packageID, ok := packageIDs[tier.Name]
		if !ok {
			return 0, missingRef("package " + tier.Name)
		}

		for _, op := range tier.Operations {
			operationID, ok := operationIDs[op]
			if !ok {
				return 0, missingRef("operation " + op)
			}

			grants = append(grants, entity.PackageOperation{
				ID:          s.newID(),
				PackageID:   packageID,
				OperationID: operationID,
			})
		}
	}

	err = s.store.InsertPackageOperations(ctx, grants)
	if err != nil {
		return 0, err
	}

	return len(grants), nil
}
