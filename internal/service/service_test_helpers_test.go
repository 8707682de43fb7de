package service

import (
	"fmt"
	"time"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// sequenceIDs hands out "id-1", "id-2", ... in order.
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func strPtr(s string) *string { return &s }
