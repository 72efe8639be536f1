package service

import (
	"fmt"

	"imageshare/internal/models"
)

// RequireRole fails with ErrForbidden unless the identity holds the role.
func RequireRole(identity *models.Identity, role string) error {
	if identity == nil || identity.Role != role {
		return fmt.Errorf("requires role %s: %w", role, models.ErrForbidden)
	}
	return nil
}

// RequireOwnership fails with ErrForbidden unless the identity is the owner
// of the resource.
func RequireOwnership(identity *models.Identity, ownerUsername string) error {
	if identity == nil || identity.Username != ownerUsername {
		return fmt.Errorf("not the owner: %w", models.ErrForbidden)
	}
	return nil
}
