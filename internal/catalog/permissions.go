package catalog

import "github.com/Black-png/trackers-api/internal/entity"

// Roles returns the fixed role set. GlobalViewer only exists on a parent
// factory, which sees the dashboards of its child factories.
func Roles(hasParentFactory bool) []string {
	roles := []string{
		entity.RoleViewer,
		entity.RoleSupervisor,
		entity.RoleAdmin,
		entity.RoleSetter,
	}

	if hasParentFactory {
		roles = append(roles, entity.RoleGlobalViewer)
	}

	return roles
}

func Areas() []string {
	return []string{
		entity.AreaGlobalDashboard,
		entity.AreaDashboard,
		entity.AreaEquipment,
		entity.AreaEquipmentType,
		entity.AreaJob,
		entity.AreaProduct,
		entity.AreaOperator,
		entity.AreaShift,
		entity.AreaDownTime,
		entity.AreaDownTimeReason,
		entity.AreaRejection,
		entity.AreaRejectionReason,
		entity.AreaUnidentifiedOperator,
		entity.AreaMaintenance,
		entity.AreaMaintenanceConfiguration,
		entity.AreaInspection,
		entity.AreaEnergy,
		entity.AreaReport,
		entity.AreaNotification,
		entity.AreaUser,
		entity.AreaRole,
		entity.AreaFactory,
		entity.AreaPackage,
		entity.AreaSettings,
	}
}

// BackfillAreas must grant every role at least view access.
func BackfillAreas() []string {
	return []string{
		entity.AreaDownTimeReason,
		entity.AreaRejectionReason,
		entity.AreaUnidentifiedOperator,
	}
}

// DefaultPermissions is the grant a role receives on an area the first time
// the pair is seeded.
func DefaultPermissions(role, area string) entity.Permissions {
	if area == entity.AreaGlobalDashboard {
		return entity.Permissions{View: role == entity.RoleGlobalViewer}
	}

	if role == entity.RoleAdmin {
		return entity.Permissions{View: true, Create: true, Edit: true, Delete: true}
	}

	return entity.Permissions{View: true}
}

// BackfillPermissions never grants less than view access.
func BackfillPermissions(role, area string) entity.Permissions {
	p := DefaultPermissions(role, area)
	p.View = true

	return p
}

// DefaultSettingEnabled reports whether a notification is switched on for
// a role on a channel when the setting row is first created.
func DefaultSettingEnabled(role string, channel entity.Channel) bool {
	if channel == entity.ChannelInApp {
		return true
	}

	return role == entity.RoleAdmin || role == entity.RoleSupervisor
}
