package repo

import (
	"time"

	"studioboard/internal/domain"
)

// Static fixture data for degraded mode. Keys are the legacy identifiers
// the dashboard shipped with; they stay valid lookup keys for seeded
// records (see Memory.index).

func TaskFixtures() []Fixture[domain.Task] {
	base := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	return []Fixture[domain.Task]{
		{Key: "t1", Val: domain.Task{
			Title:       "Record intro lesson",
			Description: "First module walkthrough, two takes",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			Assignee:    "Sara",
			CreatedAt:   base,
		}},
		{Key: "t2", Val: domain.Task{
			Title:       "Order acoustic panels",
			Description: "Back wall of the recording room",
			Status:      domain.StatusPending,
			Priority:    domain.PriorityMedium,
			Assignee:    "Omar",
			CreatedAt:   base.Add(26 * time.Hour),
		}},
		{Key: "t3", Val: domain.Task{
			Title:       "Draft pricing page copy",
			Description: "Compare against the three tiers in the strategy doc",
			Status:      domain.StatusDone,
			Priority:    domain.PriorityLow,
			Assignee:    "Lina",
			CreatedAt:   base.Add(50 * time.Hour),
		}},
	}
}

func AssetFixtures() []Fixture[domain.Asset] {
	return []Fixture[domain.Asset]{
		{Key: "a1", Val: domain.Asset{
			Name:     "Sony FX30 camera",
			Category: "Production",
			Price:    1800,
			Status:   domain.AssetStatusOrdered,
			Owner:    "Omar",
			Note:     "Ships with the 18-105mm kit lens",
		}},
		{Key: "a2", Val: domain.Asset{
			Name:     "Standing desk",
			Category: "Furniture",
			Price:    420,
			Status:   domain.AssetStatusToBuy,
			Owner:    "Sara",
		}},
		{Key: "a3", Val: domain.Asset{
			Name:     "Adobe CC licenses x3",
			Category: "Licenses",
			Price:    1650,
			Status:   domain.AssetStatusReceived,
			Owner:    "Lina",
			Note:     "Renews every January",
		}},
	}
}

func ExpenseFixtures() []Fixture[domain.Expense] {
	return []Fixture[domain.Expense]{
		{Key: "e1", Val: domain.Expense{
			Name:     "Video hosting",
			Category: "Software",
			Amount:   79,
			Status:   domain.ExpenseStatusActive,
			Note:     "Monthly, annual plan quoted at 790",
		}},
		{Key: "e2", Val: domain.Expense{
			Name:     "Studio electricity",
			Category: "Utilities",
			Amount:   120,
			Status:   domain.ExpenseStatusActive,
		}},
		{Key: "e3", Val: domain.Expense{
			Name:     "Stock music subscription",
			Category: "Software",
			Amount:   35,
			Status:   domain.ExpenseStatusPaused,
			Note:     "Paused until editing resumes",
		}},
	}
}

func MilestoneFixtures() []Fixture[domain.Milestone] {
	return []Fixture[domain.Milestone]{
		{Key: "m1", Val: domain.Milestone{
			Phase:       "Studio build-out",
			Description: "Room treatment, lighting, desk setup",
			StartDate:   "2026-01-05",
			EndDate:     "2026-02-28",
			IsComplete:  true,
		}},
		{Key: "m2", Val: domain.Milestone{
			Phase:       "Curriculum recording",
			Description: "All core modules recorded and edited",
			StartDate:   "2026-03-01",
			EndDate:     "2026-06-30",
			IsCurrent:   true,
		}},
		{Key: "m3", Val: domain.Milestone{
			Phase:       "Launch",
			Description: "Payment flow live, first cohort enrolled",
			StartDate:   "2026-07-01",
			EndDate:     "2026-09-01",
		}},
	}
}

func IdeaFixtures() []Fixture[domain.Idea] {
	return []Fixture[domain.Idea]{
		{Key: "i1", Val: domain.Idea{
			Title:     "Free mini-course funnel",
			Content:   "Three short lessons as the lead magnet, upsell at the end",
			Category:  "Marketing",
			Color:     "#FDE68A",
			CreatedAt: time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC),
		}},
		{Key: "i2", Val: domain.Idea{
			Title:     "Cohort office hours",
			Content:   "Weekly live Q&A, recorded and added to the library",
			Category:  "Product",
			Color:     "#BFDBFE",
			CreatedAt: time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
		}},
	}
}

func CompetitorFixtures() []Fixture[domain.Competitor] {
	return []Fixture[domain.Competitor]{
		{Key: "c1", Val: domain.Competitor{
			Name:       "CodeAcademy MENA",
			LogoURL:    "https://example.com/logos/cam.png",
			Strengths:  []string{"Brand recognition", "Large back catalog"},
			Weaknesses: []string{"No Arabic subtitles", "Outdated stack coverage"},
			URL:        "https://example.com/cam",
			RichNotes:  "Strong on beginner content, weak on project-based work.",
		}},
		{Key: "c2", Val: domain.Competitor{
			Name:       "DevPath",
			Strengths:  []string{"Aggressive pricing"},
			Weaknesses: []string{"Low production quality"},
			URL:        "https://example.com/devpath",
		}},
	}
}
