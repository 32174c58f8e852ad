package repository

import (
	"production-app/internal/domain/scenes"

	"gorm.io/gorm"
)

func CreateScene(db *gorm.DB, scene *scenes.Scene) error {
	return db.Create(scene).Error
}

func SceneByID(db *gorm.DB, id uint) (*scenes.Scene, error) {
	var scene scenes.Scene
	if err := db.Preload("Project").First(&scene, id).Error; err != nil {
		return nil, err
	}
	return &scene, nil
}

func SceneByProjectAndNumber(db *gorm.DB, projectID uint, number int) (*scenes.Scene, error) {
	var scene scenes.Scene
	err := db.Preload("Project").
		Where("project_id = ? AND number = ?", projectID, number).
		First(&scene).Error
	if err != nil {
		return nil, err
	}
	return &scene, nil
}

func ListScenesByProject(db *gorm.DB, projectID uint) ([]scenes.Scene, error) {
	var out []scenes.Scene
	err := db.Where("project_id = ?", projectID).Order("number ASC").Find(&out).Error
	return out, err
}

func SaveScene(db *gorm.DB, scene *scenes.Scene) error {
	return db.Save(scene).Error
}

func DeleteScene(db *gorm.DB, id uint) error {
	return db.Delete(&scenes.Scene{}, id).Error
}
