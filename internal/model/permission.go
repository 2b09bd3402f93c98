package model

// Permission represents a string code for a specific back-office action.
type Permission string

const (
	// PermissionMediaUpload allows uploading media files (question images).
	PermissionMediaUpload Permission = "media:upload"

	// PermissionQuestionsRead allows viewing the question bank.
	PermissionQuestionsRead Permission = "questions:read"

	// PermissionQuestionsWrite allows creating and editing draft questions.
	PermissionQuestionsWrite Permission = "questions:write"

	// PermissionQuestionsPublish allows publishing and archiving questions.
	PermissionQuestionsPublish Permission = "questions:publish"

	// PermissionQuestionsImport allows bulk CSV question imports.
	PermissionQuestionsImport Permission = "questions:import"

	// PermissionUsersRead allows viewing learner accounts.
	PermissionUsersRead Permission = "users:read"

	// PermissionUsersWrite allows creating, updating, and deleting learner accounts.
	PermissionUsersWrite Permission = "users:write"

	// PermissionAdminsRead allows viewing admin user lists and details.
	PermissionAdminsRead Permission = "admins:read"

	// PermissionAdminsWrite allows creating, updating, and deleting admin users.
	PermissionAdminsWrite Permission = "admins:write"

	// PermissionRolesRead allows viewing admin roles and permissions.
	PermissionRolesRead Permission = "roles:read"

	// PermissionRolesWrite allows creating, updating, and deleting admin roles.
	PermissionRolesWrite Permission = "roles:write"

	// PermissionSettingsRead allows viewing application settings.
	PermissionSettingsRead Permission = "settings:read"

	// PermissionSettingsWrite allows editing application settings.
	PermissionSettingsWrite Permission = "settings:write"

	// PermissionCatalogRead allows viewing subjects, topics, boards and passages.
	PermissionCatalogRead Permission = "catalog:read"

	// PermissionCatalogWrite allows editing subjects, topics, boards and passages.
	PermissionCatalogWrite Permission = "catalog:write"
)

// AllPermissions lists every permission code, for role editing screens.
var AllPermissions = []Permission{
	PermissionMediaUpload,
	PermissionQuestionsRead,
	PermissionQuestionsWrite,
	PermissionQuestionsPublish,
	PermissionQuestionsImport,
	PermissionUsersRead,
	PermissionUsersWrite,
	PermissionAdminsRead,
	PermissionAdminsWrite,
	PermissionRolesRead,
	PermissionRolesWrite,
	PermissionSettingsRead,
	PermissionSettingsWrite,
	PermissionCatalogRead,
	PermissionCatalogWrite,
}
