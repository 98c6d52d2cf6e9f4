package repositories

import (
	"errors"
	"fmt"

	"expense-analysis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		db: db,
	}
}

// Create persists a single expense
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// CreateBatch persists all expenses from one pipeline run in a single
// transaction so a partial batch never lands.
func (r *ExpenseRepository) CreateBatch(expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, expense := range expenses {
			if err := tx.Create(expense).Error; err != nil {
				return fmt.Errorf("failed to create expense %q: %w", expense.Description, err)
			}
		}
		return nil
	})
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return &expense, nil
}

// GetAll retrieves expenses newest first with pagination
func (r *ExpenseRepository) GetAll(offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByCategory retrieves expenses in a category newest first
func (r *ExpenseRepository) GetByCategory(category models.Category, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.db.Model(&models.Expense{}).Where("category = ?", category)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses by category: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses by category: %w", err)
	}

	return expenses, total, nil
}

// GetTotalsByCategory sums all stored expense amounts per category
func (r *ExpenseRepository) GetTotalsByCategory() (map[string]float64, error) {
	type row struct {
		Category string
		Total    float64
	}
	var rows []row

	if err := r.db.Model(&models.Expense{}).
		Select("category, SUM(amount) as total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to total expenses by category: %w", err)
	}

	totals := make(map[string]float64, len(rows))
	for _, r := range rows {
		totals[r.Category] = r.Total
	}

	return totals, nil
}
