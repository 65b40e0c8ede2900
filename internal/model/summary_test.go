package model

import "testing"

// TestItemStatusString tests the String method of ItemStatus.
func TestItemStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   ItemStatus
		expected string
	}{
		{StatusProcessed, "PROCESSED"},
		{StatusSkippedNoDate, "NO DATE"},
		{StatusFailed, "FAILED"},
		{ItemStatus(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.status.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.status.String(), tc.expected)
			}
		})
	}
}

// TestRunSummaryTallies tests the derived counts.
func TestRunSummaryTallies(t *testing.T) {
	t.Parallel()

	s := &RunSummary{OutputDir: "/out"}
	s.Add(ItemResult{Name: "a.jpg", Status: StatusProcessed, Detail: "2023-07-04"})
	s.Add(ItemResult{Name: "b.jpg", Status: StatusSkippedNoDate})
	s.Add(ItemResult{Name: "c.jpg", Status: StatusProcessed, Detail: "2024-01-01"})
	s.Add(ItemResult{Name: "d.png", Status: StatusFailed, Detail: "decode: boom"})

	if got := s.Processed(); got != 2 {
		t.Errorf("Processed() = %d, expected 2", got)
	}
	if got := s.SkippedNoDate(); got != 1 {
		t.Errorf("SkippedNoDate() = %d, expected 1", got)
	}
	if got := s.Failed(); got != 1 {
		t.Errorf("Failed() = %d, expected 1", got)
	}
	if got := s.Total(); got != 4 {
		t.Errorf("Total() = %d, expected 4", got)
	}
}
