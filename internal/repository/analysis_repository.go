package repository

import (
	"fmt"

	"eeg-analyzer-go/internal/model"

	"gorm.io/gorm"
)

// AnalysisRepository интерфейс для работы с историей анализов
type AnalysisRepository interface {
	Create(analysis *model.Analysis) error
	GetByID(id string) (*model.Analysis, error)
	List(page, pageSize int) ([]*model.Analysis, int64, error)
	Delete(id string) error
}

// analysisRepository реализация AnalysisRepository
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository создает новый instance AnalysisRepository
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Create сохраняет результат анализа в базе данных
func (r *analysisRepository) Create(analysis *model.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetByID получает результат анализа по ID
func (r *analysisRepository) GetByID(id string) (*model.Analysis, error) {
	var analysis model.Analysis
	err := r.db.Where("id = ?", id).First(&analysis).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &analysis, nil
}

// List получает список анализов с пагинацией
func (r *analysisRepository) List(page, pageSize int) ([]*model.Analysis, int64, error) {
	var analyses []*model.Analysis
	var total int64

	// Подсчитываем общее количество
	if err := r.db.Model(&model.Analysis{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	// Получаем записи с пагинацией
	offset := (page - 1) * pageSize
	err := r.db.
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&analyses).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}

	return analyses, total, nil
}

// Delete удаляет результат анализа по ID
func (r *analysisRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.Analysis{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis with id %s not found", id)
	}
	return nil
}
