package dto

// RoleResponse rol del catálogo estático.
type RoleResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions,omitempty"`
}

// RoleListResponse roles visibles para quien llama.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}
