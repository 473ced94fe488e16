package repository

import (
	"encoding/json"
	"errors"

	"gradebook_backend/internal/model"

	"gorm.io/gorm"
)

type GradebookRepository struct {
	DB *gorm.DB
}

func NewGradebookRepository(db *gorm.DB) *GradebookRepository {
	return &GradebookRepository{DB: db}
}

func (r *GradebookRepository) FindByOwner(owner string) (*model.GradebookRecord, error) {
	var rec model.GradebookRecord
	err := r.DB.Where("owner_id = ?", owner).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save 每个 owner 一行，存在则整体覆盖
func (r *GradebookRepository) Save(owner string, data json.RawMessage) error {
	var rec model.GradebookRecord
	err := r.DB.Where("owner_id = ?", owner).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&model.GradebookRecord{OwnerID: owner, Data: data}).Error
	}
	if err != nil {
		return err
	}
	rec.Data = data
	return r.DB.Save(&rec).Error
}
