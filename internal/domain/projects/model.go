package projects

import (
	"fmt"
	"time"

	"production-app/internal/domain/team"
)

type AudiovisualProject struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:255;not null;uniqueIndex:idx_projects_title" json:"title"`
	ProductionType   string     `gorm:"size:50;not null" json:"production_type"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EstimatedEndDate *time.Time `gorm:"type:date" json:"estimated_end_date,omitempty"`
	Budget           float64    `gorm:"type:decimal(15,2);not null" json:"budget"`
	Status           string     `gorm:"size:50;not null" json:"status"`

	DirectorID *uint            `gorm:"index" json:"director_id,omitempty"`
	Director   *team.TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"director,omitempty"`

	Description         *string `gorm:"type:text" json:"description,omitempty"`
	PlannedDistribution *string `gorm:"size:100" json:"planned_distribution,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p AudiovisualProject) String() string {
	return fmt.Sprintf("%s (%s)", p.Title, p.Status)
}
