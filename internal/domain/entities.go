package domain

import "time"

// Domain entities: business objects only.
// No Gin, no SurrealDB types here.

// Task is a unit of studio work on the board.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Assignee    string    `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Asset is a piece of equipment or a purchase the studio tracks.
type Asset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Owner    string  `json:"owner"`
	Note     string  `json:"note"`
}

// Expense is a recurring or one-off cost line.
type Expense struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Note     string  `json:"note"`
}

// Milestone is one phase on the launch timeline. Dates are plain
// YYYY-MM-DD strings so they sort lexicographically.
type Milestone struct {
	ID          string `json:"id"`
	Phase       string `json:"phase"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsComplete  bool   `json:"isComplete"`
	IsCurrent   bool   `json:"isCurrent"`
}

// Idea is a strategy note card.
type Idea struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Competitor is a research note about a competing studio.
type Competitor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	LogoURL    string   `json:"logoUrl"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	URL        string   `json:"url"`
	RichNotes  string   `json:"richNotes"`
	Images     []string `json:"images"`
}

// Settings is the singleton budget/launch configuration document.
type Settings struct {
	TotalBudget       float64 `json:"totalBudget"`
	LaunchDate        string  `json:"launchDate"`
	RevenuePerStudent float64 `json:"revenuePerStudent"`
}

// DefaultSettings is what GET /settings returns before anyone saved one.
func DefaultSettings() Settings {
	return Settings{
		TotalBudget:       50000,
		LaunchDate:        "2026-09-01",
		RevenuePerStudent: 250,
	}
}
