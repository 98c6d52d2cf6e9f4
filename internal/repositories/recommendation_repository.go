package repositories

import (
	"errors"
	"fmt"

	"expense-analysis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

// RecommendationRepository handles database operations for recommendations
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *gorm.DB) RecommendationRepositoryInterface {
	return &RecommendationRepository{
		db: db,
	}
}

// Create persists a recommendation
func (r *RecommendationRepository) Create(recommendation *models.Recommendation) error {
	if recommendation == nil {
		return errors.New("recommendation cannot be nil")
	}

	if err := r.db.Create(recommendation).Error; err != nil {
		return fmt.Errorf("failed to create recommendation: %w", err)
	}

	return nil
}

// GetByID retrieves a recommendation by its ID
func (r *RecommendationRepository) GetByID(id uuid.UUID) (*models.Recommendation, error) {
	var recommendation models.Recommendation
	if err := r.db.First(&recommendation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("failed to get recommendation by ID: %w", err)
	}

	return &recommendation, nil
}

// GetByAnalysisID retrieves the recommendation attached to an analysis
func (r *RecommendationRepository) GetByAnalysisID(analysisID uuid.UUID) (*models.Recommendation, error) {
	var recommendation models.Recommendation
	if err := r.db.First(&recommendation, "analysis_id = ?", analysisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, fmt.Errorf("failed to get recommendation by analysis ID: %w", err)
	}

	return &recommendation, nil
}

// ListAll retrieves recommendations newest first with pagination
func (r *RecommendationRepository) ListAll(offset, limit int) ([]models.Recommendation, int64, error) {
	var recommendations []models.Recommendation
	var total int64

	if err := r.db.Model(&models.Recommendation{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recommendations: %w", err)
	}

	if err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recommendations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list recommendations: %w", err)
	}

	return recommendations, total, nil
}
