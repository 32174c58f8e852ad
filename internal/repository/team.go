package repository

import (
	"production-app/internal/domain/team"

	"gorm.io/gorm"
)

func CreateMember(db *gorm.DB, member *team.TeamMember) error {
	return db.Create(member).Error
}

func MemberByID(db *gorm.DB, id uint) (*team.TeamMember, error) {
	var member team.TeamMember
	if err := db.Preload("Role").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func MemberByEmail(db *gorm.DB, email string) (*team.TeamMember, error) {
	var member team.TeamMember
	if err := db.Preload("Role").Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func ListMembers(db *gorm.DB) ([]team.TeamMember, error) {
	var out []team.TeamMember
	err := db.Preload("Role").Order("last_name ASC, first_name ASC").Find(&out).Error
	return out, err
}

func ListMembersByRole(db *gorm.DB, roleID uint) ([]team.TeamMember, error) {
	var out []team.TeamMember
	err := db.Where("role_id = ?", roleID).Order("last_name ASC, first_name ASC").Find(&out).Error
	return out, err
}

func SaveMember(db *gorm.DB, member *team.TeamMember) error {
	return db.Save(member).Error
}

func DeleteMember(db *gorm.DB, id uint) error {
	return db.Delete(&team.TeamMember{}, id).Error
}
