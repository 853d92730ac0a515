package models

import (
	"strings"
	"time"
)

// Guest is a person a booking is made for. Phone is the business key: repeat
// bookings from the same phone update this record instead of creating a new
// one.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Surname    string `gorm:"size:100" json:"surname"`
	FirstName  string `gorm:"size:100" json:"firstName"`
	MiddleName string `gorm:"size:100" json:"middleName"`

	Phone string `gorm:"size:32;uniqueIndex" json:"phone"`
	Email string `gorm:"size:255" json:"email,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins the non-empty name parts. Self-service bookings may leave
// all of them blank.
func (g *Guest) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{g.Surname, g.FirstName, g.MiddleName} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// HasName reports whether any name part is filled in.
func (g *Guest) HasName() bool {
	return strings.TrimSpace(g.Surname) != "" ||
		strings.TrimSpace(g.FirstName) != "" ||
		strings.TrimSpace(g.MiddleName) != ""
}
