package chatbot

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

// Reply is the chatbot payload returned to clients.
type Reply struct {
	Response string                `json:"response"`
	Products []products.ProductDTO `json:"products"`
}

// IntentRecorder observes which intent each query resolved to.
type IntentRecorder interface {
	IncIntent(intent enums.ChatIntent)
}

// Service answers queries and records them in the user's chat history.
type Service interface {
	Ask(ctx context.Context, userID, query string) (*Reply, error)
}

type service struct {
	resolver *Resolver
	history  chathistory.Service
	logg     *logger.Logger
	metrics  IntentRecorder
}

func NewService(resolver *Resolver, history chathistory.Service, logg *logger.Logger, metrics IntentRecorder) (Service, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver required")
	}
	if history == nil {
		return nil, fmt.Errorf("chat history service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{resolver: resolver, history: history, logg: logg, metrics: metrics}, nil
}

func (s *service) Ask(ctx context.Context, userID, query string) (*Reply, error) {
	res, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Database connection error. Please try again later.")
	}
	if s.metrics != nil {
		s.metrics.IncIntent(res.Intent)
	}

	if err := s.history.Append(ctx, userID, res.Query, res.Response); err != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{"intent": res.Intent.String()})
		s.logg.Error(logCtx, "chat_history.append_failed", err)
	}

	return &Reply{Response: res.Response, Products: res.Products}, nil
}
