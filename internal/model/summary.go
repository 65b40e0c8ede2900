package model

import "time"

// ItemStatus classifies the outcome of processing a single image.
type ItemStatus int

const (
	// StatusProcessed means a stamped copy was written.
	StatusProcessed ItemStatus = iota

	// StatusSkippedNoDate means the image carried no capture-time
	// metadata. This is the expected, non-error skip condition.
	StatusSkippedNoDate

	// StatusFailed means decoding, rendering, or saving the item failed.
	StatusFailed
)

// String returns the human-readable status label.
func (s ItemStatus) String() string {
	switch s {
	case StatusProcessed:
		return "PROCESSED"
	case StatusSkippedNoDate:
		return "NO DATE"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// ItemResult records the outcome for one target image.
type ItemResult struct {
	// Name is the target's base filename.
	Name string

	// Status classifies the outcome.
	Status ItemStatus

	// Detail carries the date stamp for processed items or the error
	// text for failed ones.
	Detail string
}

// RunSummary accumulates per-item results over a batch run. It is
// ephemeral: built during one invocation, printed, and discarded.
type RunSummary struct {
	// OutputDir is the directory stamped copies were written to.
	OutputDir string

	// StartedAt is when the batch began.
	StartedAt time.Time

	// Elapsed is the total batch duration.
	Elapsed time.Duration

	// Items holds one result per target, in processing order.
	Items []ItemResult
}

// Add appends a per-item result.
func (s *RunSummary) Add(r ItemResult) {
	s.Items = append(s.Items, r)
}

// Processed returns the number of items written to the output directory.
func (s *RunSummary) Processed() int { return s.count(StatusProcessed) }

// SkippedNoDate returns the number of items skipped for lacking
// capture-time metadata.
func (s *RunSummary) SkippedNoDate() int { return s.count(StatusSkippedNoDate) }

// Failed returns the number of items that failed to process.
func (s *RunSummary) Failed() int { return s.count(StatusFailed) }

// Total returns the number of targets examined.
func (s *RunSummary) Total() int { return len(s.Items) }

func (s *RunSummary) count(status ItemStatus) int {
	n := 0
	for _, item := range s.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}
