package chathistory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
)

// Service records and reads the per-user chat log.
type Service interface {
	Append(ctx context.Context, userID, query, response string) error
	List(ctx context.Context, userID string) ([]EntryDTO, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// Option customises the service.
type Option func(*service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo *Repository, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("chat history repository required")
	}
	s := &service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) Append(ctx context.Context, userID, query, response string) error {
	if strings.TrimSpace(userID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	entry := &models.ChatHistory{
		UserID:    userID,
		Timestamp: s.now().UTC().Truncate(time.Microsecond),
		Query:     query,
		Response:  response,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Error saving chat history.")
	}
	return nil
}

func (s *service) List(ctx context.Context, userID string) ([]EntryDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Error fetching chat history.")
	}
	return fromModels(rows), nil
}
