package accounts_models

import (
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
)

// Role is static reference data; hierarchy level orders roles by privilege,
// higher means more privileged.
type Role struct {
	Name           accounts_enums.AccountRole `json:"name"           gorm:"column:name;primaryKey"`
	HierarchyLevel int                        `json:"hierarchyLevel" gorm:"column:hierarchy_level"`
}

func (Role) TableName() string {
	return "roles"
}

type RolePermission struct {
	Role       accounts_enums.AccountRole `json:"role"       gorm:"column:role"`
	Permission accounts_enums.Permission  `json:"permission" gorm:"column:permission"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
