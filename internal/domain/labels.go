package domain

// Canonical enumerated values. The lower-case forms predate the label
// rename and still exist in older documents; MigrateLabels rewrites them
// in place and NormalizeTask maps them at read time until it runs.

const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusDone       = "Done"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// TaskStatuses and TaskPriorities list the canonical values, in display order.
var (
	TaskStatuses   = []string{StatusPending, StatusInProgress, StatusDone}
	TaskPriorities = []string{PriorityHigh, PriorityMedium, PriorityLow}
)

// Asset enumerations.
const (
	AssetStatusToBuy    = "ToBuy"
	AssetStatusOrdered  = "Ordered"
	AssetStatusReceived = "Received"
)

var AssetCategories = []string{"Production", "Infrastructure", "Electronics", "Licenses", "Furniture"}

// Expense enumerations.
const (
	ExpenseStatusActive    = "Active"
	ExpenseStatusPaused    = "Paused"
	ExpenseStatusCancelled = "Cancelled"
)

// LegacyStatus and LegacyPriority map pre-rename values to canonical ones.
// Exactly these six pairs drive the label migration.
var (
	LegacyStatus = map[string]string{
		"pending":     StatusPending,
		"in-progress": StatusInProgress,
		"completed":   StatusDone,
	}
	LegacyPriority = map[string]string{
		"high":   PriorityHigh,
		"medium": PriorityMedium,
		"low":    PriorityLow,
	}
)

// CanonicalStatus maps a possibly-legacy status to its canonical value.
// Unknown values pass through unchanged.
func CanonicalStatus(s string) string {
	if c, ok := LegacyStatus[s]; ok {
		return c
	}
	return s
}

// CanonicalPriority maps a possibly-legacy priority to its canonical value.
func CanonicalPriority(p string) string {
	if c, ok := LegacyPriority[p]; ok {
		return c
	}
	return p
}

// NormalizeTask applies the legacy label mapping in memory without
// persisting anything, so old documents display correctly before the
// migration has run.
func NormalizeTask(t Task) Task {
	t.Status = CanonicalStatus(t.Status)
	t.Priority = CanonicalPriority(t.Priority)
	return t
}
