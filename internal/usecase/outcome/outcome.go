// Package outcome defines the tagged result of a soft-fail write operation.
//
// Write paths on the board absorb "row is missing" and "requester is not the
// author" as silent no-ops so stale UI state cannot interrupt the user flow.
// The outcome tag keeps those skips observable in logs, metrics and tests
// even though callers see the same success either way. An outcome is
// meaningful only when the accompanying error is nil.
package outcome

// Outcome reports what a write operation actually did.
type Outcome int

const (
	// Applied means the mutation was performed.
	Applied Outcome = iota
	// SkippedNotFound means the target row did not exist and nothing was written.
	SkippedNotFound
	// SkippedUnauthorized means the requester did not own the row and nothing was written.
	SkippedUnauthorized
)

// String returns the label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedNotFound:
		return "skipped_not_found"
	case SkippedUnauthorized:
		return "skipped_unauthorized"
	default:
		return "unknown"
	}
}

// DidApply reports whether the mutation was performed.
func (o Outcome) DidApply() bool {
	return o == Applied
}
