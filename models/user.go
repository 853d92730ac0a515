package models

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. The guest role is read-only:
// it can browse cabins and availability but never create or change bookings.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleGuest   Role = "guest"
)

// rolePermissions is the explicit permission table. Keep it exhaustive so a
// new role fails closed until it is added here.
var rolePermissions = map[Role]struct {
	CreateBooking bool
	EditBooking   bool
	CancelBooking bool
	ManageCabins  bool
}{
	RoleAdmin:   {CreateBooking: true, EditBooking: true, CancelBooking: true, ManageCabins: true},
	RoleManager: {CreateBooking: true, EditBooking: true, CancelBooking: true, ManageCabins: false},
	RoleGuest:   {},
}

// ParseRole maps a stored role string onto the closed enumeration.
// Unknown values come back as RoleGuest so they stay read-only.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	default:
		return RoleGuest
	}
}

func (r Role) CanCreateBooking() bool { return rolePermissions[r].CreateBooking }
func (r Role) CanEditBooking() bool   { return rolePermissions[r].EditBooking }
func (r Role) CanCancelBooking() bool { return rolePermissions[r].CancelBooking }
func (r Role) CanManageCabins() bool  { return rolePermissions[r].ManageCabins }

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string `gorm:"size:255" json:"-"`

	Surname    string `gorm:"size:100" json:"surname"`
	FirstName  string `gorm:"size:100" json:"firstName"`
	MiddleName string `gorm:"size:100" json:"middleName"`

	Role Role `gorm:"size:20" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the request-scoped identity handed to the reservation engine.
// It replaces any process-wide "current user" state: every operation receives
// the caller explicitly.
type Session struct {
	UserID uint
	Role   Role
}
