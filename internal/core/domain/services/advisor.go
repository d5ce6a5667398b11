package services

import "fmt"

// Severity ranks an advisory by urgency.
type Severity int

const (
	// SeverityLow marks conditions worth reviewing eventually.
	SeverityLow Severity = iota + 1

	// SeverityMedium marks conditions that need attention soon.
	SeverityMedium

	// SeverityHigh marks conditions blocking people right now.
	SeverityHigh
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Advisory is one actionable finding for the operations team.
type Advisory struct {
	Severity Severity
	Message  string
	Count    int
}

// Summary is the full set of advisories for one snapshot, ordered from the
// most urgent to the least, plus the total number of affected records.
type Summary struct {
	Advisories    []Advisory
	TotalAffected int
}

// OperationsSnapshot carries the counts the Advisor reasons about. The
// read-side queries fill it; the Advisor itself never touches storage.
type OperationsSnapshot struct {
	PendingApplications    int
	OverduePendingPayments int
	FailedPayments         int
	SuspendedDrivers       int
}

// Advisor is a stateless domain service that turns operational counts into
// prioritized advisories for the marketplace operators.
//
// Rules, in emission order:
//   - pending applications waiting for review -> high
//   - pending payments overdue past the configured cutoff -> medium
//   - failed payments -> medium
//   - suspended drivers -> low
//
// A rule with a zero count emits nothing; an all-zero snapshot yields an
// empty summary.
type Advisor struct{}

// NewAdvisor creates a new Advisor instance.
func NewAdvisor() Advisor {
	return Advisor{}
}

// Summarize evaluates every rule against the snapshot and returns the
// resulting advisories ordered by severity, highest first.
func (a Advisor) Summarize(snapshot OperationsSnapshot) Summary {
	var summary Summary

	add := func(severity Severity, count int, format string) {
		if count <= 0 {
			return
		}
		summary.Advisories = append(summary.Advisories, Advisory{
			Severity: severity,
			Message:  fmt.Sprintf(format, count),
			Count:    count,
		})
		summary.TotalAffected += count
	}

	add(SeverityHigh, snapshot.PendingApplications,
		"%d driver applications are waiting for review")
	add(SeverityMedium, snapshot.OverduePendingPayments,
		"%d pending payments are overdue")
	add(SeverityMedium, snapshot.FailedPayments,
		"%d payments have failed and need a retry or correction")
	add(SeverityLow, snapshot.SuspendedDrivers,
		"%d drivers are currently suspended")

	return summary
}
