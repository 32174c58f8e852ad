package repository

import (
	"production-app/internal/domain/contracts"

	"gorm.io/gorm"
)

func CreateContract(db *gorm.DB, contract *contracts.TalentContract) error {
	return db.Create(contract).Error
}

func ContractByID(db *gorm.DB, id uint) (*contracts.TalentContract, error) {
	var contract contracts.TalentContract
	if err := db.Preload("Project").Preload("Member").First(&contract, id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func ContractByProjectAndMember(db *gorm.DB, projectID, memberID uint) (*contracts.TalentContract, error) {
	var contract contracts.TalentContract
	err := db.Preload("Project").Preload("Member").
		Where("project_id = ? AND member_id = ?", projectID, memberID).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func ListContractsByProject(db *gorm.DB, projectID uint) ([]contracts.TalentContract, error) {
	var out []contracts.TalentContract
	err := db.Preload("Member").Where("project_id = ?", projectID).
		Order("signing_date ASC").Find(&out).Error
	return out, err
}

func ListContractsByMember(db *gorm.DB, memberID uint) ([]contracts.TalentContract, error) {
	var out []contracts.TalentContract
	err := db.Preload("Project").Where("member_id = ?", memberID).
		Order("signing_date ASC").Find(&out).Error
	return out, err
}

func SaveContract(db *gorm.DB, contract *contracts.TalentContract) error {
	return db.Save(contract).Error
}

func DeleteContract(db *gorm.DB, id uint) error {
	return db.Delete(&contracts.TalentContract{}, id).Error
}
