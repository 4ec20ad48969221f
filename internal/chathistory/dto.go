package chathistory

import (
	"time"

	"github.com/angelmondragon/shopassist-backend/pkg/db/models"
)

// EntryDTO is one chat history item as returned to the owning user.
type EntryDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
}

func fromModels(rows []models.ChatHistory) []EntryDTO {
	out := make([]EntryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, EntryDTO{Timestamp: row.Timestamp.UTC(), Query: row.Query, Response: row.Response})
	}
	return out
}
