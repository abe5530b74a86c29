package domain

import (
	"math"
	"time"
)

// IsTrialExpired reports whether a trial subscription is past its expiry.
// Non-trial subscriptions are never "trial expired".
func IsTrialExpired(s Subscription, now time.Time) bool {
	if s.Status != StatusTrial {
		return false
	}
	return now.After(s.ExpiryDate)
}

// TrialDaysRemaining counts the days left in a trial, rounding partial days
// up. It is zero for non-trial subscriptions and never negative.
func TrialDaysRemaining(s Subscription, now time.Time) int {
	if s.Status != StatusTrial || s.TrialEndsAt == nil {
		return 0
	}

	left := s.TrialEndsAt.Sub(now)
	days := int(math.Ceil(float64(left) / float64(24*time.Hour)))
	return max(0, days)
}

// CanAccessApp gates the tracking features: the quiz must be done and the
// subscription either active or an unexpired trial.
func CanAccessApp(quizCompleted bool, s Subscription, now time.Time) bool {
	if !quizCompleted {
		return false
	}

	switch s.Status {
	case StatusActive:
		return true
	case StatusTrial:
		return !IsTrialExpired(s, now)
	default:
		return false
	}
}
