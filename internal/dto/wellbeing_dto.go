package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogMoodRequest struct {
	Mood int    `json:"mood" validate:"min=0,max=4"`
	Note string `json:"note,omitempty" validate:"max=500"`
}

type MoodEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DailyScore struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type WeeklyAnalyticsResponse struct {
	Days         []DailyScore `json:"days"`
	Average      float64      `json:"average"`
	EntryCount   int          `json:"entry_count"`
	Trend        string       `json:"trend"`
	MessagesSent int          `json:"messages_sent"`
}

type MonthlyScoresResponse struct {
	Days []DailyScore `json:"days"`
}
