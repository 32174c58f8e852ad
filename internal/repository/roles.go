package repository

import (
	"production-app/internal/domain/roles"

	"gorm.io/gorm"
)

func CreateRole(db *gorm.DB, role *roles.ProductionRole) error {
	return db.Create(role).Error
}

func RoleByID(db *gorm.DB, id uint) (*roles.ProductionRole, error) {
	var role roles.ProductionRole
	if err := db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func RoleByName(db *gorm.DB, name string) (*roles.ProductionRole, error) {
	var role roles.ProductionRole
	if err := db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func ListRoles(db *gorm.DB) ([]roles.ProductionRole, error) {
	var out []roles.ProductionRole
	err := db.Order("name ASC").Find(&out).Error
	return out, err
}

func SaveRole(db *gorm.DB, role *roles.ProductionRole) error {
	return db.Save(role).Error
}

func DeleteRole(db *gorm.DB, id uint) error {
	return db.Delete(&roles.ProductionRole{}, id).Error
}
