package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is one logged mood, 0 (lowest) to 4 (highest).
type MoodEntry struct {
	Id        uuid.UUID
	Mood      int
	Note      string
	CreatedAt time.Time
}
