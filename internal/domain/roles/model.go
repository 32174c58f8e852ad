package roles

import "time"

type ProductionRole struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `gorm:"size:50;not null;uniqueIndex:idx_production_roles_name" json:"name"`
	Description    *string  `gorm:"type:text" json:"description,omitempty"`
	Department     string   `gorm:"size:50;not null" json:"department"`
	AverageSalary  *float64 `gorm:"type:decimal(10,2)" json:"average_salary,omitempty"`
	RequiredSkills *string  `gorm:"type:text" json:"required_skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r ProductionRole) String() string {
	return r.Name
}
