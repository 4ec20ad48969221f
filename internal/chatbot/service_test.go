package chatbot

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/db/dbtest"
	"github.com/angelmondragon/shopassist-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHistory struct{}

func (failingHistory) Append(context.Context, string, string, string) error {
	return errors.New("disk full")
}

func (failingHistory) List(context.Context, string) ([]chathistory.EntryDTO, error) {
	return nil, errors.New("disk full")
}

type intentCounter map[enums.ChatIntent]int

func (c intentCounter) IncIntent(intent enums.ChatIntent) { c[intent]++ }

func TestAskLogsNormalizedQueryToHistory(t *testing.T) {
	client := dbtest.New(t)
	repo := products.NewRepository(client.DB())
	require.NoError(t, repo.CreateBatch(context.Background(), sampleCatalog().products))

	history, err := chathistory.NewService(chathistory.NewRepository(client.DB()))
	require.NoError(t, err)
	resolver, err := NewResolver(repo)
	require.NoError(t, err)
	counter := intentCounter{}
	svc, err := NewService(resolver, history, logger.Nop(), counter)
	require.NoError(t, err)

	ctx := context.Background()
	reply, err := svc.Ask(ctx, "user-1", "  Search for LAPTOP ")
	require.NoError(t, err)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Laptop Pro X", reply.Products[0].Name)

	reply, err = svc.Ask(ctx, "user-1", "hello")
	require.NoError(t, err)
	assert.Empty(t, reply.Products)

	entries, err := history.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "search for laptop", entries[0].Query)
	assert.Contains(t, entries[0].Response, "I found 1 product(s)")
	assert.Equal(t, "hello", entries[1].Query)
	assert.Equal(t, msgGreeting, entries[1].Response)

	assert.Equal(t, 1, counter[enums.ChatIntentKeywordSearch])
	assert.Equal(t, 1, counter[enums.ChatIntentGreeting])
}

func TestAskSwallowsHistoryFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf, Format: "json"})
	resolver, err := NewResolver(sampleCatalog())
	require.NoError(t, err)
	svc, err := NewService(resolver, failingHistory{}, logg, nil)
	require.NoError(t, err)

	reply, err := svc.Ask(context.Background(), "user-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, msgGreeting, reply.Response)
	assert.Contains(t, buf.String(), "chat_history.append_failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestAskCatalogFailureIsInternal(t *testing.T) {
	resolver, err := NewResolver(&stubCatalog{err: errors.New("db down")})
	require.NoError(t, err)
	svc, err := NewService(resolver, failingHistory{}, logger.Nop(), nil)
	require.NoError(t, err)

	_, err = svc.Ask(context.Background(), "user-1", "show all")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())
	assert.Equal(t, "Database connection error. Please try again later.", typed.Message())
}

func TestNewServiceRequiresDeps(t *testing.T) {
	resolver, err := NewResolver(sampleCatalog())
	require.NoError(t, err)

	_, err = NewService(nil, failingHistory{}, logger.Nop(), nil)
	require.Error(t, err)
	_, err = NewService(resolver, nil, logger.Nop(), nil)
	require.Error(t, err)
	_, err = NewService(resolver, failingHistory{}, nil, nil)
	require.Error(t, err)
}
