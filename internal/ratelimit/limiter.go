// Package ratelimit throttles expensive per user actions (mostly llm calls) with
// in-process fixed window counters.
//
// Counters live in memory only, a restart resets every window. It is a best effort
// throttle protecting the llm budget, not a durable quota.
package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/config"
	"github.com/rebld/rebldserver/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

type Action string

const (
	ActionGenerateWorkoutPlan Action = "generate_workout_plan"
	ActionAnalyzeBodyPhoto    Action = "analyze_body_photo"
	ActionChatMessage         Action = "chat_message"
	ActionExplainExercise     Action = "explain_exercise"
	ActionParseWorkoutPlan    Action = "parse_workout_plan"
)

// expired windows are swept every pruneEvery checks
const pruneEvery = 1000

type Limit struct {
	MaxCalls int
	Window   time.Duration
	Message  string
}

func DefaultLimits() map[Action]Limit {
	return map[Action]Limit{
		ActionGenerateWorkoutPlan: {
			MaxCalls: 3,
			Window:   time.Hour,
			Message:  "Plan generation limit reached. Please wait before generating another plan.",
		},
		ActionAnalyzeBodyPhoto: {
			MaxCalls: 5,
			Window:   time.Hour,
			Message:  "Photo analysis limit reached. Please wait before analyzing another photo.",
		},
		ActionChatMessage: {
			MaxCalls: 20,
			Window:   time.Hour,
			Message:  "Chat message limit reached. Please slow down.",
		},
		ActionExplainExercise: {
			MaxCalls: 50,
			Window:   time.Hour,
			Message:  "Exercise explanation limit reached.",
		},
		ActionParseWorkoutPlan: {
			MaxCalls: 10,
			Window:   time.Hour,
			Message:  "Plan parsing limit reached.",
		},
	}
}

// LimitsFromConfig applies the configured overrides on top of limits. Zero values keep the default.
func LimitsFromConfig(limits map[Action]Limit, overrides map[string]config.RateLimitConfig) (map[Action]Limit, error) {
	merged := make(map[Action]Limit, len(limits))
	for action, limit := range limits {
		merged[action] = limit
	}

	for name, override := range overrides {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		limit, ok := merged[action]
		if !ok {
			return nil, fmt.Errorf("rate limit override for unknown action [%s]", name)
		}
		if override.MaxCalls < 0 || override.WindowMinutes < 0 {
			return nil, fmt.Errorf("rate limit override for [%s] negative", name)
		}
		if override.MaxCalls > 0 {
			limit.MaxCalls = override.MaxCalls
		}
		if override.WindowMinutes > 0 {
			limit.Window = time.Duration(override.WindowMinutes) * time.Minute
		}
		merged[action] = limit
	}

	return merged, nil
}

type counterKey struct {
	userID string
	action Action
}

type window struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu             sync.Mutex
	limits         map[Action]Limit
	counters       map[counterKey]*window
	checks         int
	now            func() time.Time
	metricsManager *metrics.Manager
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func WithLimits(limits map[Action]Limit) Option {
	return func(l *Limiter) {
		l.limits = limits
	}
}

func NewLimiter(metricsManager *metrics.Manager, opts ...Option) *Limiter {
	l := &Limiter{
		limits:         DefaultLimits(),
		counters:       map[counterKey]*window{},
		now:            time.Now,
		metricsManager: metricsManager,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check counts one call of action by the user, or fails with *apperr.RateLimitError
// when the current window is used up.
func (l *Limiter) Check(userID string, action Action) error {
	limit, ok := l.limits[action]
	if !ok {
		return apperr.Validation("unknown rate limited action [%s]", action)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.checks++
	if l.checks%pruneEvery == 0 {
		l.prune(now)
	}

	key := counterKey{userID: userID, action: action}
	w, ok := l.counters[key]
	if !ok || now.After(w.resetAt) {
		l.counters[key] = &window{
			count:   1,
			resetAt: now.Add(limit.Window),
		}
		return nil
	}

	if w.count >= limit.MaxCalls {
		l.metricsManager.CounterLLMRateLimited.WithLabelValues(string(action)).Inc()
		log.Debugf("user [%s] rate limited on [%s] until %s", userID, action, w.resetAt)
		return &apperr.RateLimitError{
			Action:     string(action),
			Message:    limit.Message,
			RetryAfter: w.resetAt.Sub(now),
		}
	}

	w.count++
	return nil
}

// Reset drops the user's window for action, or all of the user's windows when action is empty.
func (l *Limiter) Reset(userID string, action Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if action != "" {
		delete(l.counters, counterKey{userID: userID, action: action})
		return
	}

	for key := range l.counters {
		if key.userID == userID {
			delete(l.counters, key)
		}
	}
}

// Remaining is the number of calls left in the user's current window, 0 for unknown actions.
func (l *Limiter) Remaining(userID string, action Action) int {
	limit, ok := l.limits[action]
	if !ok {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.counters[counterKey{userID: userID, action: action}]
	if !ok || l.now().After(w.resetAt) {
		return limit.MaxCalls
	}
	return max(0, limit.MaxCalls-w.count)
}

func (l *Limiter) prune(now time.Time) {
	for key, w := range l.counters {
		if now.After(w.resetAt) {
			delete(l.counters, key)
		}
	}
}
