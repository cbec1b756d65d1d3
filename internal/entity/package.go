package entity

import "github.com/gofrs/uuid/v5"

type Package struct {
	ID    uuid.UUID `db:"id"    json:"id"`
	Name  string    `db:"name"  json:"name"`
	Level int       `db:"level" json:"level"`
}

type Operation struct {
	ID   uuid.UUID `db:"id"   json:"id"`
	Name string    `db:"name" json:"name"`
}

// PackageOperation grants an operation to every tenant on the package.
type PackageOperation struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	PackageID   uuid.UUID `db:"package_id"   json:"package_id"`
	OperationID uuid.UUID `db:"operation_id" json:"operation_id"`
}

type PackageWithOperations struct {
	Name       string   `json:"name"`
	Level      int      `json:"level"`
	Operations []string `json:"operations"`
}

const (
	PackageStarter        = "Starter"
	PackageBase           = "Base"
	PackageBaseEnergy     = "BaseEnergy"
	PackageAdvanced       = "Advanced"
	PackageProfessional   = "Professional"
	PackageEnterprise     = "Enterprise"
	PackageComplete       = "Complete"
	PackageCompleteEnergy = "CompleteEnergy"
)

const (
	OperationOEE             = "OEE"
	OperationJob             = "Job"
	OperationAuxiliary       = "Auxiliary"
	OperationOperation       = "Operation"
	OperationMasterData      = "MasterData"
	OperationDowntime        = "Downtime"
	OperationRejection       = "Rejection"
	OperationShift           = "Shift"
	OperationEnergy          = "Energy"
	OperationMaintenance     = "Maintenance"
	OperationInspection      = "Inspection"
	OperationReport          = "Report"
	OperationNotification    = "Notification"
	OperationGlobalDashboard = "GlobalDashboard"
	OperationComplete        = "Complete"
)
