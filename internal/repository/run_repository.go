package repository

import (
	"gorm.io/gorm"

	"faultmesh/internal/models"
)

// RunRepository persists algorithm.Run outputs for later retrieval by
// the API's /runs endpoints.
type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(run *models.Run) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) GetByID(id uint) (*models.Run, error) {
	var run models.Run
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// ListWithPage returns runs ordered newest-first, optionally filtered
// by exact column match (e.g. {"algorithm": "hgtm"}).
func (r *RunRepository) ListWithPage(offset, limit int, filters map[string]interface{}) ([]models.Run, int64, error) {
	var runs []models.Run
	var total int64

	query := r.db.Model(&models.Run{})
	for key, value := range filters {
		if value != nil && value != "" {
			query = query.Where(key+" = ?", value)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&runs).Error; err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

func (r *RunRepository) Count(filters map[string]interface{}) (int64, error) {
	var count int64
	query := r.db.Model(&models.Run{})
	for key, value := range filters {
		if value != nil && value != "" {
			query = query.Where(key+" = ?", value)
		}
	}
	err := query.Count(&count).Error
	return count, err
}
