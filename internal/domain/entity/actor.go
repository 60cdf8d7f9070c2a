package entity

import (
	"github.com/google/uuid"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

// Actor is the authenticated dashboard user behind a request. It is passed
// explicitly into every service operation so guards and policies stay pure
// functions of their inputs.
type Actor struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Role     enum.Role `json:"role"`
	TenantID uuid.UUID `json:"tenant_id"`
}

// Privileged reports whether the actor retains mutation access while the
// tenant's subscription is inactive.
func (a Actor) Privileged() bool {
	return a.Role == enum.RoleSuperAdmin
}
