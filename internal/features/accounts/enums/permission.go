package accounts_enums

// Permission is a capability token in namespace.action form. The catalog is
// finite: authorization checks never compare role names, only permissions
// (the single primary-owner check lives on the workspace snapshot instead).
type Permission string

const (
	PermissionClientsCreate Permission = "clients.create"
	PermissionClientsUpdate Permission = "clients.update"
	PermissionClientsDelete Permission = "clients.delete"
	PermissionClientsManage Permission = "clients.manage"

	PermissionDealsCreate Permission = "deals.create"
	PermissionDealsUpdate Permission = "deals.update"
	PermissionDealsDelete Permission = "deals.delete"
	PermissionDealsManage Permission = "deals.manage"

	PermissionTasksCreate Permission = "tasks.create"
	PermissionTasksUpdate Permission = "tasks.update"
	PermissionTasksDelete Permission = "tasks.delete"
	PermissionTasksManage Permission = "tasks.manage"

	PermissionInvitesManage  Permission = "invites.manage"
	PermissionRolesManage    Permission = "roles.manage"
	PermissionMembersManage  Permission = "members.manage"
	PermissionSettingsManage Permission = "settings.manage"

	PermissionAutomationCreate   Permission = "automation.create"
	PermissionIntegrationsManage Permission = "integrations.manage"
	PermissionReportsRead        Permission = "reports.read"
)

var allPermissions = map[Permission]struct{}{
	PermissionClientsCreate:      {},
	PermissionClientsUpdate:      {},
	PermissionClientsDelete:      {},
	PermissionClientsManage:      {},
	PermissionDealsCreate:        {},
	PermissionDealsUpdate:        {},
	PermissionDealsDelete:        {},
	PermissionDealsManage:        {},
	PermissionTasksCreate:        {},
	PermissionTasksUpdate:        {},
	PermissionTasksDelete:        {},
	PermissionTasksManage:        {},
	PermissionInvitesManage:      {},
	PermissionRolesManage:        {},
	PermissionMembersManage:      {},
	PermissionSettingsManage:     {},
	PermissionAutomationCreate:   {},
	PermissionIntegrationsManage: {},
	PermissionReportsRead:        {},
}

// IsValid reports whether the permission belongs to the catalog.
func (p Permission) IsValid() bool {
	_, ok := allPermissions[p]
	return ok
}
