package seeder

import (
	"context"

	"github.com/Black-png/trackers-api/internal/entity"
)

// seedDowntimeReasons adds missing reasons by code. Existing reasons are
// kept as they are, even when their description or flags differ.
func (s *Seeder) seedDowntimeReasons(ctx context.Context) (int, error) {
	desired := make([]entity.DowntimeReason, 0, len(s.catalog.DowntimeReasons))

	for _, r := range s.catalog.DowntimeReasons {
		r.ID = s.newID()
		desired = append(desired, r)
	}

	return reconcile(ctx, s.store.DowntimeReasons, s.store.InsertDowntimeReasons, desired,
		func(r entity.DowntimeReason) string { return r.Code })
}

func (s *Seeder) seedMaintenancePriorities(ctx context.Context) (int, error) {
	desired := named(s.catalog.Maintenance.Priorities, func(name string) entity.MaintenancePriority {
		return entity.MaintenancePriority{ID: s.newID(), Name: name}
	})

	return reconcile(ctx, s.store.MaintenancePriorities, s.store.InsertMaintenancePriorities, desired,
		func(v entity.MaintenancePriority) string { return v.Name })
}

func (s *Seeder) seedMaintenanceStatuses(ctx context.Context) (int, error) {
	desired := named(s.catalog.Maintenance.Statuses, func(name string) entity.MaintenanceStatus {
		return entity.MaintenanceStatus{ID: s.newID(), Name: name}
	})

	return reconcile(ctx, s.store.MaintenanceStatuses, s.store.InsertMaintenanceStatuses, desired,
		func(v entity.MaintenanceStatus) string { return v.Name })
}

func (s *Seeder) seedMaintenanceTypes(ctx context.Context) (int, error) {
	desired := named(s.catalog.Maintenance.Types, func(name string) entity.MaintenanceType {
		return entity.MaintenanceType{ID: s.newID(), Name: name}
	})

	return reconcile(ctx, s.store.MaintenanceTypes, s.store.InsertMaintenanceTypes, desired,
		func(v entity.MaintenanceType) string { return v.Name })
}

func (s *Seeder) seedMaintenanceReasons(ctx context.Context) (int, error) {
	desired := named(s.catalog.Maintenance.Reasons, func(name string) entity.MaintenanceReason {
		return entity.MaintenanceReason{ID: s.newID(), Name: name}
	})

	return reconcile(ctx, s.store.MaintenanceReasons, s.store.InsertMaintenanceReasons, desired,
		func(v entity.MaintenanceReason) string { return v.Name })
}

func named[T any](names []string, build func(string) T) []T {
	out := make([]T, 0, len(names))
	for _, name := range names {
		out = append(out, build(name))
	}

	return out
}
