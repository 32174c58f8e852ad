package repository

import (
	"production-app/internal/domain/projects"

	"gorm.io/gorm"
)

func CreateProject(db *gorm.DB, project *projects.AudiovisualProject) error {
	return db.Create(project).Error
}

func ProjectByID(db *gorm.DB, id uint) (*projects.AudiovisualProject, error) {
	var project projects.AudiovisualProject
	if err := db.Preload("Director").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func ProjectByTitle(db *gorm.DB, title string) (*projects.AudiovisualProject, error) {
	var project projects.AudiovisualProject
	if err := db.Preload("Director").Where("title = ?", title).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func ListProjects(db *gorm.DB) ([]projects.AudiovisualProject, error) {
	var out []projects.AudiovisualProject
	err := db.Order("start_date DESC").Find(&out).Error
	return out, err
}

func ListProjectsByStatus(db *gorm.DB, status string) ([]projects.AudiovisualProject, error) {
	var out []projects.AudiovisualProject
	err := db.Where("status = ?", status).Order("start_date DESC").Find(&out).Error
	return out, err
}

func ListProjectsDirectedBy(db *gorm.DB, memberID uint) ([]projects.AudiovisualProject, error) {
	var out []projects.AudiovisualProject
	err := db.Where("director_id = ?", memberID).Order("start_date DESC").Find(&out).Error
	return out, err
}

func SaveProject(db *gorm.DB, project *projects.AudiovisualProject) error {
	return db.Save(project).Error
}

func DeleteProject(db *gorm.DB, id uint) error {
	return db.Delete(&projects.AudiovisualProject{}, id).Error
}
