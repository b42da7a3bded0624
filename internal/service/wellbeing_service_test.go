package service

import (
	"context"
	"testing"
	"time"

	"eva-support-be/internal/constant"
	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/kv"
	"eva-support-be/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWellbeingService(t *testing.T) (IWellbeingService, *store.MoodStore, *store.SessionStore) {
	kvStore := kv.NewMemoryStore()
	moods := store.NewMoodStore(kvStore, newTestLogger(t))
	sessions := store.NewSessionStore(kvStore, newTestLogger(t))
	return NewWellbeingService(moods, sessions, newTestLogger(t)), moods, sessions
}

func addMood(moods *store.MoodStore, mood int, daysAgo int) {
	moods.Add(entity.MoodEntry{
		Id:        uuid.New(),
		Mood:      mood,
		CreatedAt: time.Now().AddDate(0, 0, -daysAgo),
	})
}

func TestLogMoodAndHistory(t *testing.T) {
	svc, _, _ := newTestWellbeingService(t)

	res, err := svc.LogMood(context.Background(), &dto.LogMoodRequest{Mood: 2, Note: "meh"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Mood)
	assert.Equal(t, "meh", res.Note)

	history := svc.GetHistory(context.Background())
	require.Len(t, history, 1)
	assert.Equal(t, res.Id, history[0].Id)
}

func TestWeeklyAnalyticsAveragesAndWindow(t *testing.T) {
	svc, moods, sessions := newTestWellbeingService(t)

	addMood(moods, 1, 2)
	addMood(moods, 3, 1)
	addMood(moods, 4, 0)
	addMood(moods, 0, 20) // outside the 7-day window

	// A user message inside the window counts towards engagement.
	require.NoError(t, sessions.AppendMessage(sessions.ActiveId(), entity.Message{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   "checking in",
		CreatedAt: time.Now(),
	}))

	analytics := svc.GetWeeklyAnalytics(context.Background())
	require.Len(t, analytics.Days, 7)
	assert.Equal(t, 3, analytics.EntryCount)
	assert.InDelta(t, (1.0+3.0+4.0)/3.0, analytics.Average, 0.001)
	assert.Equal(t, 1, analytics.MessagesSent)
}

func TestWeeklyAnalyticsTrend(t *testing.T) {
	tests := []struct {
		name  string
		moods map[int]int // daysAgo -> mood
		want  string
	}{
		{
			name:  "improving",
			moods: map[int]int{6: 0, 5: 1, 1: 4, 0: 4},
			want:  "improving",
		},
		{
			name:  "declining",
			moods: map[int]int{6: 4, 5: 4, 1: 0, 0: 1},
			want:  "declining",
		},
		{
			name:  "steady",
			moods: map[int]int{6: 2, 5: 2, 1: 2, 0: 2},
			want:  "stable",
		},
		{
			name:  "one half empty",
			moods: map[int]int{1: 4, 0: 4},
			want:  "stable",
		},
		{
			name:  "no entries",
			moods: map[int]int{},
			want:  "stable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, moods, _ := newTestWellbeingService(t)
			for daysAgo, mood := range tt.moods {
				addMood(moods, mood, daysAgo)
			}
			analytics := svc.GetWeeklyAnalytics(context.Background())
			assert.Equal(t, tt.want, analytics.Trend)
		})
	}
}

func TestMonthlyScoresSpanThirtyDays(t *testing.T) {
	svc, moods, _ := newTestWellbeingService(t)
	addMood(moods, 3, 0)
	addMood(moods, 1, 40) // outside the window

	res := svc.GetMonthlyScores(context.Background())
	require.Len(t, res.Days, 30)

	today := res.Days[len(res.Days)-1]
	assert.Equal(t, time.Now().Format("2006-01-02"), today.Date)
	assert.Equal(t, 1, today.Count)
	assert.InDelta(t, 3.0, today.Average, 0.001)

	var total int
	for _, d := range res.Days {
		total += d.Count
	}
	assert.Equal(t, 1, total)
}
