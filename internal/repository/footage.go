package repository

import (
	"production-app/internal/domain/footage"

	"gorm.io/gorm"
)

func CreateMaterial(db *gorm.DB, material *footage.RecordedMaterial) error {
	return db.Create(material).Error
}

func MaterialByID(db *gorm.DB, id uint) (*footage.RecordedMaterial, error) {
	var material footage.RecordedMaterial
	if err := db.Preload("Scene").First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func MaterialByStoragePath(db *gorm.DB, path string) (*footage.RecordedMaterial, error) {
	var material footage.RecordedMaterial
	if err := db.Where("storage_path = ?", path).First(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func ListMaterialsByScene(db *gorm.DB, sceneID uint) ([]footage.RecordedMaterial, error) {
	var out []footage.RecordedMaterial
	err := db.Where("scene_id = ?", sceneID).Order("recorded_at ASC").Find(&out).Error
	return out, err
}

func SaveMaterial(db *gorm.DB, material *footage.RecordedMaterial) error {
	return db.Save(material).Error
}

func DeleteMaterial(db *gorm.DB, id uint) error {
	return db.Delete(&footage.RecordedMaterial{}, id).Error
}
