package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Role struct {
	ID   uuid.UUID `db:"id"   json:"id"`
	Name string    `db:"name" json:"name"`
}

const (
	RoleViewer       = "Viewer"
	RoleSupervisor   = "Supervisor"
	RoleAdmin        = "Admin"
	RoleSetter       = "Setter"
	RoleGlobalViewer = "GlobalViewer"
)

type UserArea struct {
	ID   uuid.UUID `db:"id"   json:"id"`
	Name string    `db:"name" json:"name"`
}

const (
	AreaGlobalDashboard          = "GlobalDashboard"
	AreaDashboard                = "Dashboard"
	AreaEquipment                = "Equipment"
	AreaEquipmentType            = "EquipmentType"
	AreaJob                      = "Job"
	AreaProduct                  = "Product"
	AreaOperator                 = "Operator"
	AreaShift                    = "Shift"
	AreaDownTime                 = "DownTime"
	AreaDownTimeReason           = "DownTimeReason"
	AreaRejection                = "Rejection"
	AreaRejectionReason          = "RejectionReason"
	AreaUnidentifiedOperator     = "UnidentifiedOperator"
	AreaMaintenance              = "Maintenance"
	AreaMaintenanceConfiguration = "MaintenanceConfiguration"
	AreaInspection               = "Inspection"
	AreaEnergy                   = "Energy"
	AreaReport                   = "Report"
	AreaNotification             = "Notification"
	AreaUser                     = "User"
	AreaRole                     = "Role"
	AreaFactory                  = "Factory"
	AreaPackage                  = "Package"
	AreaSettings                 = "Settings"
)

// UserAreaRole grants a role CRUD flags on one area.
type UserAreaRole struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	RoleID    uuid.UUID `db:"role_id"    json:"role_id"`
	AreaID    uuid.UUID `db:"area_id"    json:"area_id"`
	CanView   bool      `db:"can_view"   json:"can_view"`
	CanCreate bool      `db:"can_create" json:"can_create"`
	CanEdit   bool      `db:"can_edit"   json:"can_edit"`
	CanDelete bool      `db:"can_delete" json:"can_delete"`
}

type Permissions struct {
	View   bool
	Create bool
	Edit   bool
	Delete bool
}
