package scenes

import (
	"fmt"
	"time"

	"production-app/internal/domain/projects"
)

type Scene struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint                        `gorm:"not null;uniqueIndex:idx_scenes_project_number,priority:1" json:"project_id"`
	Project   projects.AudiovisualProject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Number      int    `gorm:"not null;uniqueIndex:idx_scenes_project_number,priority:2" json:"number"`
	Description string `gorm:"type:text;not null" json:"description"`
	Location    string `gorm:"size:255;not null" json:"location"`

	EstimatedShootDate *time.Time `gorm:"type:date" json:"estimated_shoot_date,omitempty"`
	ShootTime          *string    `gorm:"type:time" json:"shoot_time,omitempty"`

	// Free text for now; a proper cast relation would replace this.
	Actors           *string `gorm:"type:text" json:"actors,omitempty"`
	SpecialEquipment *string `gorm:"type:text" json:"special_equipment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Scene) String() string {
	return fmt.Sprintf("%s - Scene %d", s.Project.Title, s.Number)
}
