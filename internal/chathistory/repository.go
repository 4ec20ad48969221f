package chathistory

import (
	"context"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists chat log entries. Entries are never updated or deleted.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, entry *models.ChatHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByUser returns a user's entries oldest first; id breaks timestamp ties.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.ChatHistory, error) {
	var rows []models.ChatHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "timestamp"}},
			{Column: clause.Column{Name: "id"}},
		}}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
