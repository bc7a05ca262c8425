package dto

import "github.com/hongminglow/library-be/internal/models"

// UpdateUserRequest only changes name and email when they are non-empty.
type UpdateUserRequest struct {
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Permissions *models.PermissionsPatch `json:"permissions"`
}
