package service

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletedAtPolicy decides what lesson_completions.completed_at holds after a
// resubmission. ResolveCompletedAt and upsertExpr must agree.
type CompletedAtPolicy int

const (
	// Stamped on every passing submission, kept through failing ones.
	CompletedAtLatestCompletion CompletedAtPolicy = iota
	// Mirrors only the most recent submission: null after a failing one.
	CompletedAtLatestSubmission
	// First passing time, never overwritten or cleared.
	CompletedAtFirstCompletion
)

const DefaultCompletedAtPolicy = CompletedAtLatestCompletion

func (p CompletedAtPolicy) String() string {
	switch p {
	case CompletedAtLatestSubmission:
		return "latest-submission"
	case CompletedAtFirstCompletion:
		return "first-completion"
	default:
		return "latest-completion"
	}
}

// ParseCompletedAtPolicy reads QUIZ_COMPLETED_AT_POLICY style values; "" is the default.
func ParseCompletedAtPolicy(s string) (CompletedAtPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latest-completion":
		return CompletedAtLatestCompletion, nil
	case "latest-submission":
		return CompletedAtLatestSubmission, nil
	case "first-completion":
		return CompletedAtFirstCompletion, nil
	default:
		return DefaultCompletedAtPolicy, fmt.Errorf("unknown completed_at policy %q", s)
	}
}

// ResolveCompletedAt is the in-memory form of the rule applied by the upsert.
func ResolveCompletedAt(p CompletedAtPolicy, previous *time.Time, completed bool, now time.Time) *time.Time {
	var current *time.Time
	if completed {
		t := now
		current = &t
	}
	switch p {
	case CompletedAtLatestSubmission:
		return current
	case CompletedAtFirstCompletion:
		if previous != nil {
			return previous
		}
		return current
	default:
		if current != nil {
			return current
		}
		return previous
	}
}

// upsertExpr: "excluded" is the row we tried to insert, whose completed_at is
// now() on a pass and NULL otherwise.
func (p CompletedAtPolicy) upsertExpr() clause.Expr {
	switch p {
	case CompletedAtLatestSubmission:
		return gorm.Expr("excluded.completed_at")
	case CompletedAtFirstCompletion:
		return gorm.Expr("COALESCE(lesson_completions.completed_at, excluded.completed_at)")
	default:
		return gorm.Expr("COALESCE(excluded.completed_at, lesson_completions.completed_at)")
	}
}
