package repositories

import (
	"expense-analysis-backend/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense persistence
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	CreateBatch(expenses []*models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetAll(offset, limit int) ([]models.Expense, int64, error)
	GetByCategory(category models.Category, offset, limit int) ([]models.Expense, int64, error)
	GetTotalsByCategory() (map[string]float64, error)
}

// AnalysisRepositoryInterface defines the contract for analysis persistence
type AnalysisRepositoryInterface interface {
	Create(analysis *models.Analysis) error
	GetByID(id uuid.UUID) (*models.Analysis, error)
	ListAll(offset, limit int) ([]models.Analysis, int64, error)
	GetLatest() (*models.Analysis, error)
	Delete(id uuid.UUID) error
}

// RecommendationRepositoryInterface defines the contract for recommendation persistence
type RecommendationRepositoryInterface interface {
	Create(recommendation *models.Recommendation) error
	GetByID(id uuid.UUID) (*models.Recommendation, error)
	GetByAnalysisID(analysisID uuid.UUID) (*models.Recommendation, error)
	ListAll(offset, limit int) ([]models.Recommendation, int64, error)
}
