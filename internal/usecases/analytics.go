package usecases

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"project_cloudi/internal/entities"
	"project_cloudi/internal/interfaces"
)

const analyticsDocument = "analytics.json"

// AnalyticsSnapshot is the running usage picture kept in analytics.json.
type AnalyticsSnapshot struct {
	TotalChats    int            `json:"total_chats"`
	Sources       map[string]int `json:"sources"`
	Personalities map[string]int `json:"personalities"`
	Feedback      map[string]int `json:"feedback"`
	TodayChats    int            `json:"today_chats"`
	LastUpdated   string         `json:"last_updated"`
}

func newAnalyticsSnapshot(today string) AnalyticsSnapshot {
	return AnalyticsSnapshot{
		Sources: map[string]int{"web": 0},
		Personalities: map[string]int{
			"formal": 0, "friendly": 0, "motivational": 0, "funny": 0, "sassy": 0,
		},
		Feedback:    map[string]int{"positive": 0, "negative": 0},
		LastUpdated: today,
	}
}

// AnalyticsRecorder maintains chat counters with a daily rollover. The mutex
// serializes the load-modify-save cycle across concurrent requests; the
// counters would silently drop increments otherwise.
type AnalyticsRecorder struct {
	docs   interfaces.DocumentStore
	logger *zap.Logger
	now    func() time.Time
	mu     sync.Mutex
}

func NewAnalyticsRecorder(docs interfaces.DocumentStore, logger *zap.Logger) *AnalyticsRecorder {
	return &AnalyticsRecorder{docs: docs, logger: logger, now: time.Now}
}

// RecordChat bumps totals for one resolved chat. Failures are logged and
// swallowed; analytics must never affect the user-visible pipeline.
func (a *AnalyticsRecorder) RecordChat(mood entities.Mood, source string) {
	a.update(func(s *AnalyticsSnapshot) {
		s.TotalChats++
		s.TodayChats++
		s.Sources[source]++
		s.Personalities[string(mood)]++
	})
}

// RecordFeedback bumps the positive/negative feedback counter.
func (a *AnalyticsRecorder) RecordFeedback(kind string) {
	a.update(func(s *AnalyticsSnapshot) {
		s.Feedback[kind]++
	})
}

// Snapshot returns the current counters, rolled over if the day changed.
func (a *AnalyticsRecorder) Snapshot() AnalyticsSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load()
}

// MostPopularPersonality names the mood with the highest count, defaulting to
// formal when nothing has been recorded.
func (s AnalyticsSnapshot) MostPopularPersonality() string {
	best := "formal"
	bestCount := -1
	for mood, count := range s.Personalities {
		if count > bestCount || (count == bestCount && mood < best) {
			best = mood
			bestCount = count
		}
	}
	return best
}

func (a *AnalyticsRecorder) update(apply func(*AnalyticsSnapshot)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := a.load()
	apply(&snapshot)
	if err := a.docs.Save(analyticsDocument, snapshot); err != nil {
		a.logger.Warn("failed to save analytics", zap.Error(err))
	}
}

func (a *AnalyticsRecorder) load() AnalyticsSnapshot {
	today := a.now().Format("2006-01-02")

	var snapshot AnalyticsSnapshot
	if err := a.docs.Load(analyticsDocument, &snapshot); err != nil || snapshot.Sources == nil {
		return newAnalyticsSnapshot(today)
	}
	if snapshot.Personalities == nil {
		snapshot.Personalities = map[string]int{}
	}
	if snapshot.Feedback == nil {
		snapshot.Feedback = map[string]int{}
	}
	if snapshot.LastUpdated != today {
		snapshot.TodayChats = 0
		snapshot.LastUpdated = today
	}
	return snapshot
}
