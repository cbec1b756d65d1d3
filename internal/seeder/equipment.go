package seeder

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/entity"
)

func (s *Seeder) seedEquipmentTypes(ctx context.Context) (int, error) {
	desired := make([]entity.EquipmentType, 0, len(s.catalog.EquipmentTypes))

	for _, t := range s.catalog.EquipmentTypes {
		desired = append(desired, entity.EquipmentType{
			ID:              s.newID(),
			Name:            t.Name,
			ComputeDowntime: t.ComputeDowntime,
			ComputeOEE:      t.ComputeOEE,
			ComputeEnergy:   t.ComputeEnergy,
		})
	}

	return reconcile(ctx, s.store.EquipmentTypes, s.store.InsertEquipmentTypes, desired,
		func(t entity.EquipmentType) string { return t.Name })
}

func (s *Seeder) seedEquipmentSubTypes(ctx context.Context) (int, error) {
	types, err := s.store.EquipmentTypes(ctx)
	if err != nil {
		return 0, err
	}

	typeIDs := make(map[string]uuid.UUID, len(types))
	for _, t := range types {
		typeIDs[t.Name] = t.ID
	}

	desired := make([]entity.EquipmentSubType, 0, len(s.catalog.EquipmentSubTypes))

	for _, st := range s.catalog.EquipmentSubTypes {
		typeID, ok := typeIDs[st.Type]
		if !ok {
			return 0, missingRef("equipment type " + st.Type)
		}

		desired = append(desired, entity.EquipmentSubType{
			ID:              s.newID(),
			Name:            st.Name,
			EquipmentTypeID: typeID,
			ComputeDowntime: st.ComputeDowntime,
			ComputeOEE:      st.ComputeOEE,
			ComputeEnergy:   st.ComputeEnergy,
		})
	}

	return reconcile(ctx, s.store.EquipmentSubTypes, s.store.InsertEquipmentSubTypes, desired,
		func(t entity.EquipmentSubType) string { return t.Name })
}

type stepKey struct {
	equipmentTypeID uuid.UUID
	name            string
}

// seedInspectionSteps clones the canonical checklist onto every equipment
// type in the store, including types that were not created by the seeder.
func (s *Seeder) seedInspectionSteps(ctx context.Context) (int, error) {
	types, err := s.store.EquipmentTypes(ctx)
	if err != nil {
		return 0, err
	}

	desired := make([]entity.Step, 0, len(types)*len(s.catalog.InspectionSteps))

	for _, t := range types {
		for i, name := range s.catalog.InspectionSteps {
			desired = append(desired, entity.Step{
				ID:              s.newID(),
				EquipmentTypeID: t.ID,
				Name:            name,
				Position:        i + 1,
			})
		}
	}

	return reconcile(ctx, s.store.Steps, s.store.InsertSteps, desired, func(st entity.Step) stepKey {
		return stepKey{equipmentTypeID: st.EquipmentTypeID, name: strings.ToLower(strings.TrimSpace(st.Name))}
	})
}
