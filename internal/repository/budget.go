package repository

import (
	"production-app/internal/domain/budget"

	"gorm.io/gorm"
)

// BudgetTotals aggregates a project's line items; Actual only counts items
// that already have a real amount.
type BudgetTotals struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

func CreateLineItem(db *gorm.DB, item *budget.BudgetLineItem) error {
	return db.Create(item).Error
}

func LineItemByID(db *gorm.DB, id uint) (*budget.BudgetLineItem, error) {
	var item budget.BudgetLineItem
	if err := db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func ListLineItemsByProject(db *gorm.DB, projectID uint) ([]budget.BudgetLineItem, error) {
	var out []budget.BudgetLineItem
	err := db.Where("project_id = ?", projectID).Order("expense_date ASC, id ASC").Find(&out).Error
	return out, err
}

func ProjectBudgetTotals(db *gorm.DB, projectID uint) (BudgetTotals, error) {
	var totals BudgetTotals
	err := db.Model(&budget.BudgetLineItem{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(estimated_amount), 0) AS estimated, COALESCE(SUM(actual_amount), 0) AS actual").
		Scan(&totals).Error
	return totals, err
}

func SaveLineItem(db *gorm.DB, item *budget.BudgetLineItem) error {
	return db.Save(item).Error
}

func DeleteLineItem(db *gorm.DB, id uint) error {
	return db.Delete(&budget.BudgetLineItem{}, id).Error
}
