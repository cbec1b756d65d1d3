package repository

import (
	"context"

	"github.com/Black-png/trackers-api/internal/entity"
)

var (
	equipmentTypeColumns    = []string{"id", "name", "compute_downtime", "compute_oee", "compute_energy"}
	equipmentSubTypeColumns = []string{"id", "name", "equipment_type_id", "compute_downtime", "compute_oee", "compute_energy"}
	stepColumns             = []string{"id", "equipment_type_id", "name", "position"}
)

func (r *Repository) EquipmentTypes(ctx context.Context) ([]entity.EquipmentType, error) {
	return list[entity.EquipmentType](ctx, r.db, "equipment_types", equipmentTypeColumns...)
}

func (r *Repository) InsertEquipmentTypes(ctx context.Context, items []entity.EquipmentType) error {
	return insert(ctx, r.db, "equipment_types", equipmentTypeColumns, items, func(v entity.EquipmentType) []any {
		return []any{v.ID, v.Name, v.ComputeDowntime, v.ComputeOEE, v.ComputeEnergy}
	})
}

func (r *Repository) EquipmentSubTypes(ctx context.Context) ([]entity.EquipmentSubType, error) {
	return list[entity.EquipmentSubType](ctx, r.db, "equipment_sub_types", equipmentSubTypeColumns...)
}

func (r *Repository) InsertEquipmentSubTypes(ctx context.Context, items []entity.EquipmentSubType) error {
	return insert(ctx, r.db, "equipment_sub_types", equipmentSubTypeColumns, items, func(v entity.EquipmentSubType) []any {
		return []any{v.ID, v.Name, v.EquipmentTypeID, v.ComputeDowntime, v.ComputeOEE, v.ComputeEnergy}
	})
}

func (r *Repository) Steps(ctx context.Context) ([]entity.Step, error) {
	return list[entity.Step](ctx, r.db, "steps", stepColumns...)
}

func (r *Repository) InsertSteps(ctx context.Context, items []entity.Step) error {
	return insert(ctx, r.db, "steps", stepColumns, items, func(v entity.Step) []any {
		return []any{v.ID, v.EquipmentTypeID, v.Name, v.Position}
	})
}
