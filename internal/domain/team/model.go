package team

import (
	"fmt"
	"time"

	"production-app/internal/domain/roles"
)

type TeamMember struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	RoleID *uint                 `gorm:"index" json:"role_id,omitempty"`
	Role   *roles.ProductionRole `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role,omitempty"`

	Email        string    `gorm:"size:100;not null;uniqueIndex:idx_team_members_email" json:"email"`
	Phone        *string   `gorm:"size:20" json:"phone,omitempty"`
	HireDate     time.Time `gorm:"type:date;not null" json:"hire_date"`
	BaseSalary   float64   `gorm:"type:decimal(10,2);not null" json:"base_salary"`
	Specialty    *string   `gorm:"size:100" json:"specialty,omitempty"`
	Availability *string   `gorm:"type:text" json:"availability,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m TeamMember) String() string {
	role := "Unassigned"
	if m.Role != nil {
		role = m.Role.Name
	}
	return fmt.Sprintf("%s %s (%s)", m.FirstName, m.LastName, role)
}
