package entity

import "github.com/gofrs/uuid/v5"

type DowntimeReason struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Code        string    `db:"code"        json:"code"        yaml:"code"`
	Description string    `db:"description" json:"description" yaml:"description"`
	IsPlanned   bool      `db:"is_planned"  json:"is_planned"  yaml:"planned"`
	IsDefault   bool      `db:"is_default"  json:"is_default"  yaml:"default"`
	AutoClose   bool      `db:"auto_close"  json:"auto_close"  yaml:"auto_close"`
	Color       string    `db:"color"       json:"color"       yaml:"color"`
	// Updatable marks reasons whose canonical fields may be refreshed on
	// later runs. The seeder currently never rewrites existing rows.
	Updatable bool `db:"updatable" json:"updatable" yaml:"updatable"`
}
