package repositories

import (
	"errors"
	"fmt"

	"expense-analysis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository handles database operations for analyses
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) AnalysisRepositoryInterface {
	return &AnalysisRepository{
		db: db,
	}
}

// Create persists an analysis
func (r *AnalysisRepository) Create(analysis *models.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}

	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// GetByID retrieves an analysis by its ID
func (r *AnalysisRepository) GetByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.First(&analysis, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis by ID: %w", err)
	}

	return &analysis, nil
}

// ListAll retrieves analyses newest first with pagination
func (r *AnalysisRepository) ListAll(offset, limit int) ([]models.Analysis, int64, error) {
	var analyses []models.Analysis
	var total int64

	if err := r.db.Model(&models.Analysis{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	if err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&analyses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}

	return analyses, total, nil
}

// GetLatest retrieves the most recent analysis
func (r *AnalysisRepository) GetLatest() (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Order("created_at DESC").First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}

	return &analysis, nil
}

// Delete removes an analysis by ID
func (r *AnalysisRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Analysis{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}
