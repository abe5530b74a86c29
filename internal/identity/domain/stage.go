package domain

import "time"

// Stage is the screen an account is routed to when the app opens.
type Stage string

const (
	StageLogin        Stage = "login"
	StageQuiz         Stage = "quiz"
	StageSubscription Stage = "subscription"
	StageApp          Stage = "app"
)

// StageFor routes an account: quiz first, then a subscription when access
// has lapsed. A nil account must log in.
func StageFor(a *Account, now time.Time) Stage {
	switch {
	case a == nil:
		return StageLogin
	case !a.HasCompletedQuiz():
		return StageQuiz
	case !a.CanAccessApp(now):
		return StageSubscription
	default:
		return StageApp
	}
}
