package model

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	Id        uuid.UUID `json:"id"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"timestamp"`
}

type MoodState struct {
	Entries []MoodEntry `json:"entries"`
}
