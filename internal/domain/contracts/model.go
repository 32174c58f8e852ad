package contracts

import (
	"fmt"
	"time"

	"production-app/internal/domain/projects"
	"production-app/internal/domain/team"
)

type TalentContract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint                        `gorm:"not null;uniqueIndex:idx_talent_contracts_project_member,priority:1" json:"project_id"`
	Project   projects.AudiovisualProject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// One active contract per member and project.
	MemberID uint            `gorm:"not null;uniqueIndex:idx_talent_contracts_project_member,priority:2" json:"member_id"`
	Member   team.TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SigningDate    time.Time `gorm:"type:date;not null" json:"signing_date"`
	AgreedSalary   float64   `gorm:"type:decimal(10,2);not null" json:"agreed_salary"`
	SpecialClauses *string   `gorm:"type:text" json:"special_clauses,omitempty"`
	Duration       string    `gorm:"size:50;not null" json:"duration"`
	SpecificRole   string    `gorm:"size:100;not null" json:"specific_role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c TalentContract) String() string {
	return fmt.Sprintf("Contract of %s for %s", c.Member.FirstName, c.Project.Title)
}
