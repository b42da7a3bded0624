package service

import (
	"context"
	"time"

	"eva-support-be/internal/dto"
	"eva-support-be/internal/entity"
	"eva-support-be/internal/pkg/logger"
	"eva-support-be/internal/store"

	"github.com/google/uuid"
)

// IWellbeingService defines the wellbeing service interface
type IWellbeingService interface {
	LogMood(ctx context.Context, request *dto.LogMoodRequest) (*dto.MoodEntryResponse, error)
	GetHistory(ctx context.Context) []*dto.MoodEntryResponse
	GetWeeklyAnalytics(ctx context.Context) *dto.WeeklyAnalyticsResponse
	GetMonthlyScores(ctx context.Context) *dto.MonthlyScoresResponse
}

type wellbeingService struct {
	moods    *store.MoodStore
	sessions *store.SessionStore
	logger   logger.ILogger
}

func NewWellbeingService(moods *store.MoodStore, sessions *store.SessionStore, log logger.ILogger) IWellbeingService {
	return &wellbeingService{moods: moods, sessions: sessions, logger: log}
}

func (s *wellbeingService) LogMood(_ context.Context, request *dto.LogMoodRequest) (*dto.MoodEntryResponse, error) {
	entry := entity.MoodEntry{
		Id:        uuid.New(),
		Mood:      request.Mood,
		Note:      request.Note,
		CreatedAt: time.Now(),
	}
	s.moods.Add(entry)
	s.logger.Info("WellbeingService", "Mood logged", map[string]interface{}{"mood": entry.Mood})
	return mapMoodEntry(entry), nil
}

func (s *wellbeingService) GetHistory(_ context.Context) []*dto.MoodEntryResponse {
	entries := s.moods.List()
	response := make([]*dto.MoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, mapMoodEntry(e))
	}
	return response
}

// GetWeeklyAnalytics aggregates the last 7 days of mood entries and counts
// the user messages sent in the same window.
func (s *wellbeingService) GetWeeklyAnalytics(_ context.Context) *dto.WeeklyAnalyticsResponse {
	since := time.Now().AddDate(0, 0, -6)
	days := s.dailyScores(since, 7)

	var sum float64
	var count int
	for _, d := range days {
		sum += d.Average * float64(d.Count)
		count += d.Count
	}

	average := 0.0
	if count > 0 {
		average = sum / float64(count)
	}

	return &dto.WeeklyAnalyticsResponse{
		Days:         days,
		Average:      average,
		EntryCount:   count,
		Trend:        trend(days),
		MessagesSent: s.userMessagesSince(since),
	}
}

func (s *wellbeingService) GetMonthlyScores(_ context.Context) *dto.MonthlyScoresResponse {
	since := time.Now().AddDate(0, 0, -29)
	return &dto.MonthlyScoresResponse{Days: s.dailyScores(since, 30)}
}

// dailyScores buckets mood entries per calendar day, oldest first. Days with
// no entries are present with a zero count so charts keep a fixed axis.
func (s *wellbeingService) dailyScores(since time.Time, spanDays int) []dto.DailyScore {
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())

	sums := make(map[string]float64, spanDays)
	counts := make(map[string]int, spanDays)
	for _, e := range s.moods.List() {
		if e.CreatedAt.Before(start) {
			continue
		}
		key := e.CreatedAt.Format("2006-01-02")
		sums[key] += float64(e.Mood)
		counts[key]++
	}

	days := make([]dto.DailyScore, 0, spanDays)
	for i := 0; i < spanDays; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		score := dto.DailyScore{Date: key, Count: counts[key]}
		if score.Count > 0 {
			score.Average = sums[key] / float64(score.Count)
		}
		days = append(days, score)
	}
	return days
}

func (s *wellbeingService) userMessagesSince(since time.Time) int {
	count := 0
	for _, c := range s.sessions.List() {
		for _, m := range c.UserMessages() {
			if !m.CreatedAt.Before(since) {
				count++
			}
		}
	}
	return count
}

// trend compares the averages of the earlier and later half of the window.
// Moods are scored 0 (low) to 4 (high), so a rising average is improving.
func trend(days []dto.DailyScore) string {
	half := len(days) / 2
	earlier, eCount := windowAverage(days[:half])
	later, lCount := windowAverage(days[half:])

	if eCount == 0 || lCount == 0 {
		return "stable"
	}
	switch {
	case later-earlier > 0.25:
		return "improving"
	case earlier-later > 0.25:
		return "declining"
	default:
		return "stable"
	}
}

func windowAverage(days []dto.DailyScore) (float64, int) {
	var sum float64
	var count int
	for _, d := range days {
		sum += d.Average * float64(d.Count)
		count += d.Count
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

func mapMoodEntry(e entity.MoodEntry) *dto.MoodEntryResponse {
	return &dto.MoodEntryResponse{
		Id:        e.Id,
		Mood:      e.Mood,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
