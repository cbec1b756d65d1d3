package repository

import (
	"context"

	"github.com/Black-png/trackers-api/internal/entity"
)

var downtimeReasonColumns = []string{
	"id", "code", "description", "is_planned", "is_default", "auto_close", "color", "updatable",
}

func (r *Repository) DowntimeReasons(ctx context.Context) ([]entity.DowntimeReason, error) {
	return list[entity.DowntimeReason](ctx, r.db, "downtime_reasons", downtimeReasonColumns...)
}

func (r *Repository) InsertDowntimeReasons(ctx context.Context, reasons []entity.DowntimeReason) error {
	return insert(ctx, r.db, "downtime_reasons", downtimeReasonColumns, reasons, func(v entity.DowntimeReason) []any {
		return []any{v.ID, v.Code, v.Description, v.IsPlanned, v.IsDefault, v.AutoClose, v.Color, v.Updatable}
	})
}

func (r *Repository) MaintenancePriorities(ctx context.Context) ([]entity.MaintenancePriority, error) {
	return list[entity.MaintenancePriority](ctx, r.db, "maintenance_priorities", nameColumns...)
}

func (r *Repository) InsertMaintenancePriorities(ctx context.Context, items []entity.MaintenancePriority) error {
	return insert(ctx, r.db, "maintenance_priorities", nameColumns, items, func(v entity.MaintenancePriority) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) MaintenanceStatuses(ctx context.Context) ([]entity.MaintenanceStatus, error) {
	return list[entity.MaintenanceStatus](ctx, r.db, "maintenance_statuses", nameColumns...)
}

func (r *Repository) InsertMaintenanceStatuses(ctx context.Context, items []entity.MaintenanceStatus) error {
	return insert(ctx, r.db, "maintenance_statuses", nameColumns, items, func(v entity.MaintenanceStatus) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) MaintenanceTypes(ctx context.Context) ([]entity.MaintenanceType, error) {
	return list[entity.MaintenanceType](ctx, r.db, "maintenance_types", nameColumns...)
}

func (r *Repository) InsertMaintenanceTypes(ctx context.Context, items []entity.MaintenanceType) error {
	return insert(ctx, r.db, "maintenance_types", nameColumns, items, func(v entity.MaintenanceType) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) MaintenanceReasons(ctx context.Context) ([]entity.MaintenanceReason, error) {
	return list[entity.MaintenanceReason](ctx, r.db, "maintenance_reasons", nameColumns...)
}

func (r *Repository) InsertMaintenanceReasons(ctx context.Context, items []entity.MaintenanceReason) error {
	return insert(ctx, r.db, "maintenance_reasons", nameColumns, items, func(v entity.MaintenanceReason) []any {
		return []any{v.ID, v.Name}
	})
}
