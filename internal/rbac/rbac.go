package rbac

// Role is the caller's role, passed explicitly into every check. There is no
// hierarchy or inheritance between roles; the Can table below is the single
// source of truth.
type Role string

// Capability is a named permission over construction documents.
type Capability string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

const (
	CapUploadDocument       Capability = "upload_document"
	CapReplaceDocument      Capability = "replace_document"
	CapDeleteDocument       Capability = "delete_document"
	CapDownloadDocument     Capability = "download_document"
	CapViewDocumentMetadata Capability = "view_document_metadata"
)

// Can reports whether role holds the given capability. Unknown roles hold
// nothing (fail-closed).
func Can(role Role, cap Capability) bool {
	switch role {
	case RoleAdmin, RoleManager:
		return cap == CapUploadDocument ||
			cap == CapReplaceDocument ||
			cap == CapDeleteDocument ||
			cap == CapDownloadDocument ||
			cap == CapViewDocumentMetadata
	case RoleEmployee:
		return cap == CapDownloadDocument || cap == CapViewDocumentMetadata
	default:
		return false
	}
}

// Normalize parses a role string coming off the wire. Anything outside the
// known set maps to the empty role, which Can rejects for every capability.
func Normalize(role string) Role {
	switch Role(role) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(role)
	default:
		return Role("")
	}
}
