package models

import "time"

// ChatHistory is one resolved chatbot exchange. Rows are append-only.
type ChatHistory struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	Query     string    `gorm:"column:query;not null"`
	Response  string    `gorm:"column:response;not null"`
}

func (ChatHistory) TableName() string { return "chat_history" }
