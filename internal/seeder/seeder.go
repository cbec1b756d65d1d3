package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
	"github.com/Black-png/trackers-api/pkg/logger"
)

type Store interface {
	HasParentFactory(ctx context.Context) (bool, error)

	Roles(ctx context.Context) ([]entity.Role, error)
	InsertRoles(ctx context.Context, roles []entity.Role) error
	UserAreas(ctx context.Context) ([]entity.UserArea, error)
	InsertUserAreas(ctx context.Context, areas []entity.UserArea) error
	UserAreaRoles(ctx context.Context) ([]entity.UserAreaRole, error)
	InsertUserAreaRoles(ctx context.Context, grants []entity.UserAreaRole) error

	DowntimeReasons(ctx context.Context) ([]entity.DowntimeReason, error)
	InsertDowntimeReasons(ctx context.Context, reasons []entity.DowntimeReason) error

	MaintenancePriorities(ctx context.Context) ([]entity.MaintenancePriority, error)
	InsertMaintenancePriorities(ctx context.Context, items []entity.MaintenancePriority) error
	MaintenanceStatuses(ctx context.Context) ([]entity.MaintenanceStatus, error)
	InsertMaintenanceStatuses(ctx context.Context, items []entity.MaintenanceStatus) error
	MaintenanceTypes(ctx context.Context) ([]entity.MaintenanceType, error)
	InsertMaintenanceTypes(ctx context.Context, items []entity.MaintenanceType) error
	MaintenanceReasons(ctx context.Context) ([]entity.MaintenanceReason, error)
	InsertMaintenanceReasons(ctx context.Context, items []entity.MaintenanceReason) error

	EquipmentTypes(ctx context.Context) ([]entity.EquipmentType, error)
	InsertEquipmentTypes(ctx context.Context, items []entity.EquipmentType) error
	EquipmentSubTypes(ctx context.Context) ([]entity.EquipmentSubType, error)
	InsertEquipmentSubTypes(ctx context.Context, items []entity.EquipmentSubType) error
	Steps(ctx context.Context) ([]entity.Step, error)
	InsertSteps(ctx context.Context, items []entity.Step) error

	Packages(ctx context.Context) ([]entity.Package, error)
	InsertPackages(ctx context.Context, items []entity.Package) error
	Operations(ctx context.Context) ([]entity.Operation, error)
	InsertOperations(ctx context.Context, items []entity.Operation) error
	PackageOperations(ctx context.Context) ([]entity.PackageOperation, error)
	InsertPackageOperations(ctx context.Context, items []entity.PackageOperation) error

	NotificationTypes(ctx context.Context) ([]entity.NotificationType, error)
	InsertNotificationTypes(ctx context.Context, items []entity.NotificationType) error
	Notifications(ctx context.Context) ([]entity.Notification, error)
	InsertNotifications(ctx context.Context, items []entity.Notification) error
	NotificationSettings(ctx context.Context) ([]entity.NotificationSetting, error)
	InsertNotificationSettings(ctx context.Context, items []entity.NotificationSetting) error
	NotificationTemplates(ctx context.Context) ([]entity.NotificationTemplate, error)
	InsertNotificationTemplates(ctx context.Context, items []entity.NotificationTemplate) error
}

type Metrics interface {
	ObserveStep(step string, inserted int, d time.Duration)
	ObserveRun(err error)
}

const (
	StepRoles                 = "roles"
	StepUserAreas             = "user_areas"
	StepUserAreaRoles         = "user_area_roles"
	StepAreaBackfill          = "user_area_roles_backfill"
	StepDowntimeReasons       = "downtime_reasons"
	StepMaintenancePriorities = "maintenance_priorities"
	StepMaintenanceStatuses   = "maintenance_statuses"
	StepMaintenanceTypes      = "maintenance_types"
	StepMaintenanceReasons    = "maintenance_reasons"
	StepEquipmentTypes        = "equipment_types"
	StepEquipmentSubTypes     = "equipment_sub_types"
	StepPackages              = "packages"
	StepOperations            = "operations"
	StepPackageOperations     = "package_operations"
	StepNotificationTypes     = "notification_types"
	StepNotifications         = "notifications"
	StepNotificationSettings  = "notification_settings"
	StepNotificationTemplates = "notification_templates"
	StepInspectionSteps       = "inspection_steps"
)

// StepError names the step that failed and, when known, the natural key
// that triggered the failure.
type StepError struct {
	Step string
	Key  string
	Err  error
}

func (e *StepError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("seed %s (%s): %s", e.Step, e.Key, e.Err)
	}

	return fmt.Sprintf("seed %s: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func missingRef(key string) error {
	return &StepError{Key: key, Err: entity.ErrMissingReference}
}

type StepResult struct {
	Step     string        `json:"step"`
	Inserted int           `json:"inserted"`
	Duration time.Duration `json:"duration"`
}

type Report struct {
	Steps      []StepResult `json:"steps"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

func (r Report) Inserted() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Inserted
	}

	return total
}

type step struct {
	name string
	fn   func(ctx context.Context) (int, error)
}

type Seeder struct {
	store   Store
	catalog catalog.Catalog
	metrics Metrics
	l       *slog.Logger
	newID   func() uuid.UUID
	now     func() time.Time
}

func New(store Store, c catalog.Catalog, metrics Metrics, l *slog.Logger) *Seeder {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Seeder{
		store:   store,
		catalog: c,
		metrics: metrics,
		l:       l.With("component", "seeder"),
		newID:   func() uuid.UUID { return uuid.Must(uuid.NewV4()) },
		now:     time.Now,
	}
}

func (s *Seeder) steps() []step {
	return []step{
		{StepRoles, s.seedRoles},
		{StepUserAreas, s.seedUserAreas},
		{StepUserAreaRoles, s.seedUserAreaRoles},
		{StepAreaBackfill, s.backfillAreaRoles},
		{StepDowntimeReasons, s.seedDowntimeReasons},
		{StepMaintenancePriorities, s.seedMaintenancePriorities},
		{StepMaintenanceStatuses, s.seedMaintenanceStatuses},
		{StepMaintenanceTypes, s.seedMaintenanceTypes},
		{StepMaintenanceReasons, s.seedMaintenanceReasons},
		{StepEquipmentTypes, s.seedEquipmentTypes},
		{StepEquipmentSubTypes, s.seedEquipmentSubTypes},
		{StepPackages, s.seedPackages},
		{StepOperations, s.seedOperations},
		{StepPackageOperations, s.seedPackageOperations},
		{StepNotificationTypes, s.seedNotificationTypes},
		{StepNotifications, s.seedNotifications},
		{StepNotificationSettings, s.seedNotificationSettings},
		{StepNotificationTemplates, s.seedNotificationTemplates},
		{StepInspectionSteps, s.seedInspectionSteps},
	}
}

// EnsureSeeded adds every missing reference row. Steps run in order and
// each one commits on its own; the first failure aborts the run. A run that
// stopped half way is completed by the next one.
func (s *Seeder) EnsureSeeded(ctx context.Context) (Report, error) {
	report := Report{StartedAt: s.now()}

	for _, st := range s.steps() {
		stepCtx := logger.SetStep(ctx, st.name)
		start := s.now()

		n, err := st.fn(stepCtx)
		if err != nil {
			err = asStepError(st.name, err)
			s.l.ErrorContext(stepCtx, "seeding step failed", "error", err)
			s.metrics.ObserveRun(err)

			return report, err
		}

		d := s.now().Sub(start)
		s.metrics.ObserveStep(st.name, n, d)
		report.Steps = append(report.Steps, StepResult{Step: st.name, Inserted: n, Duration: d})

		if n > 0 {
			s.l.InfoContext(stepCtx, "seeding step inserted rows", "inserted", n)
		} else {
			s.l.DebugContext(stepCtx, "seeding step up to date")
		}
	}

	report.FinishedAt = s.now()
	s.metrics.ObserveRun(nil)
	s.l.InfoContext(ctx, "reference data seeded", "inserted", report.Inserted(), "duration", report.FinishedAt.Sub(report.StartedAt))

	return report, nil
}

func asStepError(name string, err error) error {
	var se *StepError
	if errors.As(err, &se) {
		if se.Step == "" {
			se.Step = name
		}

		return se
	}

	return &StepError{Step: name, Err: err}
}

// reconcile loads the existing rows, inserts the desired ones that are
// missing and reports how many were written. Nothing is written when the
// table is already complete.
func reconcile[T any, K comparable](
	ctx context.Context,
	load func(context.Context) ([]T, error),
	insert func(context.Context, []T) error,
	desired []T,
	keyOf func(T) K,
) (int, error) {
	existing, err := load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load existing: %w", err)
	}

	missing := Reconcile(existing, desired, keyOf)
	if len(missing) == 0 {
		return 0, nil
	}

	err = insert(ctx, missing)
	if err != nil {
		return 0, fmt.Errorf("insert %d rows: %w", len(missing), err)
	}

	return len(missing), nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveStep(string, int, time.Duration) {}
func (nopMetrics) ObserveRun(error)                       {}
