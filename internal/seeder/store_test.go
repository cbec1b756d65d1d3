package seeder_test

import (
	"context"
	"sync"

	"github.com/Black-png/trackers-api/internal/entity"
)

type table[T any] struct {
	rows    []T
	inserts int
}

func (t *table[T]) list() []T {
	return append([]T(nil), t.rows...)
}

func (t *table[T]) add(items []T) {
	t.inserts++
	t.rows = append(t.rows, items...)
}

// memStore keeps every table in memory and counts insert calls.
type memStore struct {
	mu sync.Mutex

	hasParent bool
	failOn    map[string]error
	drop      map[string]bool

	roles         table[entity.Role]
	areas         table[entity.UserArea]
	grants        table[entity.UserAreaRole]
	downtime      table[entity.DowntimeReason]
	priorities    table[entity.MaintenancePriority]
	statuses      table[entity.MaintenanceStatus]
	mTypes        table[entity.MaintenanceType]
	mReasons      table[entity.MaintenanceReason]
	eqTypes       table[entity.EquipmentType]
	eqSubTypes    table[entity.EquipmentSubType]
	steps         table[entity.Step]
	packages      table[entity.Package]
	operations    table[entity.Operation]
	packageOps    table[entity.PackageOperation]
	notifTypes    table[entity.NotificationType]
	notifications table[entity.Notification]
	settings      table[entity.NotificationSetting]
	templates     table[entity.NotificationTemplate]
}

func newMemStore() *memStore {
	return &memStore{failOn: make(map[string]error), drop: make(map[string]bool)}
}

func (m *memStore) fail(op string) error {
	return m.failOn[op]
}

func (m *memStore) insertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.roles.inserts + m.areas.inserts + m.grants.inserts + m.downtime.inserts +
		m.priorities.inserts + m.statuses.inserts + m.mTypes.inserts + m.mReasons.inserts +
		m.eqTypes.inserts + m.eqSubTypes.inserts + m.steps.inserts + m.packages.inserts +
		m.operations.inserts + m.packageOps.inserts + m.notifTypes.inserts +
		m.notifications.inserts + m.settings.inserts + m.templates.inserts
}

func load[T any](m *memStore, op string, t *table[T]) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail(op); err != nil {
		return nil, err
	}

	return t.list(), nil
}

func store[T any](m *memStore, op string, t *table[T], items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail(op); err != nil {
		return err
	}

	if len(items) == 0 || m.drop[op] {
		return nil
	}

	t.add(items)

	return nil
}

func (m *memStore) HasParentFactory(context.Context) (bool, error) {
	return m.hasParent, m.fail("HasParentFactory")
}

func (m *memStore) Roles(context.Context) ([]entity.Role, error) {
	return load(m, "Roles", &m.roles)
}

func (m *memStore) InsertRoles(_ context.Context, v []entity.Role) error {
	return store(m, "InsertRoles", &m.roles, v)
}

func (m *memStore) UserAreas(context.Context) ([]entity.UserArea, error) {
	return load(m, "UserAreas", &m.areas)
}

func (m *memStore) InsertUserAreas(_ context.Context, v []entity.UserArea) error {
	return store(m, "InsertUserAreas", &m.areas, v)
}

func (m *memStore) UserAreaRoles(context.Context) ([]entity.UserAreaRole, error) {
	return load(m, "UserAreaRoles", &m.grants)
}

func (m *memStore) InsertUserAreaRoles(_ context.Context, v []entity.UserAreaRole) error {
	return store(m, "InsertUserAreaRoles", &m.grants, v)
}

func (m *memStore) DowntimeReasons(context.Context) ([]entity.DowntimeReason, error) {
	return load(m, "DowntimeReasons", &m.downtime)
}

func (m *memStore) InsertDowntimeReasons(_ context.Context, v []entity.DowntimeReason) error {
	return store(m, "InsertDowntimeReasons", &m.downtime, v)
}

func (m *memStore) MaintenancePriorities(context.Context) ([]entity.MaintenancePriority, error) {
	return load(m, "MaintenancePriorities", &m.priorities)
}

func (m *memStore) InsertMaintenancePriorities(_ context.Context, v []entity.MaintenancePriority) error {
	return store(m, "InsertMaintenancePriorities", &m.priorities, v)
}

func (m *memStore) MaintenanceStatuses(context.Context) ([]entity.MaintenanceStatus, error) {
	return load(m, "MaintenanceStatuses", &m.statuses)
}

func (m *memStore) InsertMaintenanceStatuses(_ context.Context, v []entity.MaintenanceStatus) error {
	return store(m, "InsertMaintenanceStatuses", &m.statuses, v)
}

func (m *memStore) MaintenanceTypes(context.Context) ([]entity.MaintenanceType, error) {
	return load(m, "MaintenanceTypes", &m.mTypes)
}

func (m *memStore) InsertMaintenanceTypes(_ context.Context, v []entity.MaintenanceType) error {
	return store(m, "InsertMaintenanceTypes", &m.mTypes, v)
}

func (m *memStore) MaintenanceReasons(context.Context) ([]entity.MaintenanceReason, error) {
	return load(m, "MaintenanceReasons", &m.mReasons)
}

func (m *memStore) InsertMaintenanceReasons(_ context.Context, v []entity.MaintenanceReason) error {
	return store(m, "InsertMaintenanceReasons", &m.mReasons, v)
}

func (m *memStore) EquipmentTypes(context.Context) ([]entity.EquipmentType, error) {
	return load(m, "EquipmentTypes", &m.eqTypes)
}

func (m *memStore) InsertEquipmentTypes(_ context.Context, v []entity.EquipmentType) error {
	return store(m, "InsertEquipmentTypes", &m.eqTypes, v)
}

func (m *memStore) EquipmentSubTypes(context.Context) ([]entity.EquipmentSubType, error) {
	return load(m, "EquipmentSubTypes", &m.eqSubTypes)
}

func (m *memStore) InsertEquipmentSubTypes(_ context.Context, v []entity.EquipmentSubType) error {
	return store(m, "InsertEquipmentSubTypes", &m.eqSubTypes, v)
}

func (m *memStore) Steps(context.Context) ([]entity.Step, error) {
	return load(m, "Steps", &m.steps)
}

func (m *memStore) InsertSteps(_ context.Context, v []entity.Step) error {
	return store(m, "InsertSteps", &m.steps, v)
}

func (m *memStore) Packages(context.Context) ([]entity.Package, error) {
	return load(m, "Packages", &m.packages)
}

func (m *memStore) InsertPackages(_ context.Context, v []entity.Package) error {
	return store(m, "InsertPackages", &m.packages, v)
}

func (m *memStore) Operations(context.Context) ([]entity.Operation, error) {
	return load(m, "Operations", &m.operations)
}

func (m *memStore) InsertOperations(_ context.Context, v []entity.Operation) error {
	return store(m, "InsertOperations", &m.operations, v)
}

func (m *memStore) PackageOperations(context.Context) ([]entity.PackageOperation, error) {
	return load(m, "PackageOperations", &m.packageOps)
}

func (m *memStore) InsertPackageOperations(_ context.Context, v []entity.PackageOperation) error {
	return store(m, "InsertPackageOperations", &m.packageOps, v)
}

func (m *memStore) NotificationTypes(context.Context) ([]entity.NotificationType, error) {
	return load(m, "NotificationTypes", &m.notifTypes)
}

func (m *memStore) InsertNotificationTypes(_ context.Context, v []entity.NotificationType) error {
	return store(m, "InsertNotificationTypes", &m.notifTypes, v)
}

func (m *memStore) Notifications(context.Context) ([]entity.Notification, error) {
	return load(m, "Notifications", &m.notifications)
}

func (m *memStore) InsertNotifications(_ context.Context, v []entity.Notification) error {
	return store(m, "InsertNotifications", &m.notifications, v)
}

func (m *memStore) NotificationSettings(context.Context) ([]entity.NotificationSetting, error) {
	return load(m, "NotificationSettings", &m.settings)
}

func (m *memStore) InsertNotificationSettings(_ context.Context, v []entity.NotificationSetting) error {
	return store(m, "InsertNotificationSettings", &m.settings, v)
}

func (m *memStore) NotificationTemplates(context.Context) ([]entity.NotificationTemplate, error) {
	return load(m, "NotificationTemplates", &m.templates)
}

func (m *memStore) InsertNotificationTemplates(_ context.Context, v []entity.NotificationTemplate) error {
	return store(m, "InsertNotificationTemplates", &m.templates, v)
}
