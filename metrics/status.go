package metrics

import "strings"

// Outcome is the normalized terminal result of a test execution.
type Outcome string

// Outcomes ...
const (
	OutcomePassed      Outcome = "passed"
	OutcomeFailed      Outcome = "failed"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeTimedOut    Outcome = "timedOut"
	OutcomeInterrupted Outcome = "interrupted"
	OutcomeOther       Outcome = "other"
)

// NormalizeOutcome maps a raw outcome or status string to an Outcome. The comparison is
// case-insensitive; anything unrecognized, including the empty string, is OutcomeOther.
func NormalizeOutcome(raw string) Outcome {
	switch strings.ToLower(raw) {
	case "expected", "passed":
		return OutcomePassed
	case "unexpected", "failed":
		return OutcomeFailed
	case "skipped":
		return OutcomeSkipped
	case "timedout":
		return OutcomeTimedOut
	case "interrupted":
		return OutcomeInterrupted
	default:
		return OutcomeOther
	}
}

// StatusCounts ...
type StatusCounts struct {
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	Skipped     int `json:"skipped"`
	TimedOut    int `json:"timedOut"`
	Interrupted int `json:"interrupted"`
	Other       int `json:"other"`
}

// Total ...
func (c StatusCounts) Total() int {
	return c.Passed + c.Failed + c.Skipped + c.TimedOut + c.Interrupted + c.Other
}

// CountStatuses buckets every item by its outcome.
func CountStatuses(items []Item) StatusCounts {
	var counts StatusCounts
	for _, item := range items {
		switch item.Outcome() {
		case OutcomePassed:
			counts.Passed++
		case OutcomeFailed:
			counts.Failed++
		case OutcomeSkipped:
			counts.Skipped++
		case OutcomeTimedOut:
			counts.TimedOut++
		case OutcomeInterrupted:
			counts.Interrupted++
		default:
			counts.Other++
		}
	}
	return counts
}

// PassRate returns passed/(passed+failed) as a percentage rounded half up, or 0 when there is
// nothing to divide by.
func PassRate(passed, failed int) int {
	denominator := passed + failed
	if denominator <= 0 {
		return 0
	}
	return (200*passed + denominator) / (2 * denominator)
}
