package models

import (
	"golang.org/x/crypto/bcrypt"
)

// UserRole identifies what a staff member is allowed to do.
type UserRole string

const (
	RoleCoordinator UserRole = "coordinator"
	RoleDoctor      UserRole = "doctor"
	RoleNurse       UserRole = "nurse"
)

// RoleLabels maps roles to their display names.
var RoleLabels = map[UserRole]string{
	RoleCoordinator: "Operations Coordinator",
	RoleDoctor:      "Doctor",
	RoleNurse:       "Nurse Assistant",
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCoordinator, RoleDoctor, RoleNurse:
		return true
	}
	return false
}

// Label returns the display name for the role.
func (r UserRole) Label() string {
	return RoleLabels[r]
}

// User represents a staff member in the system
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"is_active"`
	// PasswordHash is the bcrypt hash of the account credential. It is never
	// serialized; the directory is fixed and there is no registration flow.
	PasswordHash string `json:"-"`
}

// placeholderPassword is the credential every seeded account accepts.
const placeholderPassword = "password"

// SeedUsers returns the staff directory. Accounts are created here and nowhere
// else; lookups are linear scans over this list.
func SeedUsers() []User {
	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an invalid cost, which is a programming error.
		panic(err)
	}
	return []User{
		{ID: "1", Name: "Ana Coordinator", Email: "ana@medical.com", Role: RoleCoordinator, IsActive: true, PasswordHash: string(hash)},
		{ID: "2", Name: "Dr. Carlos García", Email: "carlos@medical.com", Role: RoleDoctor, IsActive: true, PasswordHash: string(hash)},
		{ID: "3", Name: "María Nurse", Email: "maria@medical.com", Role: RoleNurse, IsActive: true, PasswordHash: string(hash)},
	}
}
