package budget

import (
	"fmt"
	"time"

	"production-app/internal/domain/projects"
)

type BudgetLineItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint                        `gorm:"not null;index" json:"project_id"`
	Project   projects.AudiovisualProject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Category        string     `gorm:"size:100;not null" json:"category"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	EstimatedAmount float64    `gorm:"type:decimal(10,2);not null" json:"estimated_amount"`
	ActualAmount    *float64   `gorm:"type:decimal(10,2)" json:"actual_amount,omitempty"`
	ExpenseDate     *time.Time `gorm:"type:date" json:"expense_date,omitempty"`
	ApprovedBy      *string    `gorm:"size:100" json:"approved_by,omitempty"`
	Currency        string     `gorm:"size:10;not null;default:'USD'" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b BudgetLineItem) String() string {
	return fmt.Sprintf("%s - %s", b.Project.Title, b.Category)
}
