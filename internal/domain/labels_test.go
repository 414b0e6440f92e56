package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pending", StatusPending},
		{"in-progress", StatusInProgress},
		{"completed", StatusDone},
		{StatusPending, StatusPending},
		{StatusInProgress, StatusInProgress},
		{StatusDone, StatusDone},
		{"archived", "archived"}, // unknown values pass through
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanonicalStatus(tc.in), "status %q", tc.in)
	}
}

func TestCanonicalPriority(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"high", PriorityHigh},
		{"medium", PriorityMedium},
		{"low", PriorityLow},
		{PriorityHigh, PriorityHigh},
		{"urgent", "urgent"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanonicalPriority(tc.in), "priority %q", tc.in)
	}
}

func TestNormalizeTask(t *testing.T) {
	in := Task{Title: "old doc", Status: "completed", Priority: "high"}
	out := NormalizeTask(in)

	assert.Equal(t, StatusDone, out.Status)
	assert.Equal(t, PriorityHigh, out.Priority)
	assert.Equal(t, "old doc", out.Title)

	// Canonical input is untouched.
	canon := Task{Status: StatusInProgress, Priority: PriorityLow}
	assert.Equal(t, canon, NormalizeTask(canon))
}

func TestClassifyTaskUpdate(t *testing.T) {
	cases := []struct {
		name string
		old  string
		next string
		want Action
	}{
		{"into done", StatusInProgress, StatusDone, ActionComplete},
		{"pending into done", StatusPending, StatusDone, ActionComplete},
		{"already done", StatusDone, StatusDone, ActionUpdate},
		{"reopened", StatusDone, StatusPending, ActionUpdate},
		{"plain edit", StatusPending, StatusInProgress, ActionUpdate},
		{"legacy completed relabeled", "completed", StatusDone, ActionUpdate},
		{"legacy pending into done", "pending", StatusDone, ActionComplete},
		{"into legacy completed", "in-progress", "completed", ActionComplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyTaskUpdate(Task{Status: tc.old}, Task{Status: tc.next})
			assert.Equal(t, tc.want, got)
		})
	}
}
