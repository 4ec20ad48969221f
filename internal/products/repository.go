package products

import (
	"context"
	"sort"
	"strings"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"gorm.io/gorm"
)

const seedBatchSize = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository is the product catalog store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns every product ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single product. A missing row yields gorm.ErrRecordNotFound.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Search returns products whose name, category or description contains any of
// the terms, case-insensitively. Terms are expected in lower case.
func (r *Repository) Search(ctx context.Context, terms []string) ([]models.Product, error) {
	if len(terms) == 0 {
		return []models.Product{}, nil
	}

	clauses := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*3)
	for _, term := range terms {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		clauses = append(clauses,
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where(strings.Join(clauses, " OR "), args...).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DistinctCategories returns each category once, sorted ascending.
func (r *Repository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	sort.Strings(categories)
	return categories, nil
}

// Count returns the number of catalog rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBatch inserts products and fills in their ids.
func (r *Repository) CreateBatch(ctx context.Context, rows []models.Product) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, seedBatchSize).Error
}
