package entity

import "github.com/gofrs/uuid/v5"

type EquipmentType struct {
	ID              uuid.UUID `db:"id"               json:"id"`
	Name            string    `db:"name"             json:"name"`
	ComputeDowntime bool      `db:"compute_downtime" json:"compute_downtime"`
	ComputeOEE      bool      `db:"compute_oee"      json:"compute_oee"`
	ComputeEnergy   bool      `db:"compute_energy"   json:"compute_energy"`
}

type EquipmentSubType struct {
	ID              uuid.UUID `db:"id"                json:"id"`
	Name            string    `db:"name"              json:"name"`
	EquipmentTypeID uuid.UUID `db:"equipment_type_id" json:"equipment_type_id"`
	ComputeDowntime bool      `db:"compute_downtime"  json:"compute_downtime"`
	ComputeOEE      bool      `db:"compute_oee"       json:"compute_oee"`
	ComputeEnergy   bool      `db:"compute_energy"    json:"compute_energy"`
}

// Step is an inspection checklist item owned by an equipment type.
type Step struct {
	ID              uuid.UUID `db:"id"                json:"id"`
	EquipmentTypeID uuid.UUID `db:"equipment_type_id" json:"equipment_type_id"`
	Name            string    `db:"name"              json:"name"`
	Position        int       `db:"position"          json:"position"`
}
