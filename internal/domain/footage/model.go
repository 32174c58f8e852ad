package footage

import (
	"fmt"
	"time"

	"production-app/internal/domain/scenes"
)

type RecordedMaterial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SceneID uint         `gorm:"not null;index" json:"scene_id"`
	Scene   scenes.Scene `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MaterialType    string    `gorm:"size:50;not null" json:"material_type"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	FileFormat      string    `gorm:"size:20;not null" json:"file_format"`
	RecordedAt      time.Time `gorm:"not null" json:"recorded_at"`
	StoragePath     string    `gorm:"size:255;not null;uniqueIndex:idx_recorded_materials_storage_path" json:"storage_path"`
	TechnicalNotes  *string   `gorm:"type:text" json:"technical_notes,omitempty"`
	Version         string    `gorm:"size:10;not null;default:'V1'" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m RecordedMaterial) String() string {
	return fmt.Sprintf("Material %d of scene %d (%s)", m.ID, m.Scene.Number, m.FileFormat)
}
