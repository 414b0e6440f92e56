package repo

import (
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"studioboard/internal/domain"
)

// Storage records mirror the domain entities with SurrealDB field types:
// ids are RecordIDs and timestamps are CustomDateTime so the CBOR codec
// round-trips them. Converters keep the driver types out of the domain.

type taskRecord struct {
	ID          *models.RecordID       `json:"id,omitempty"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Status      string                 `json:"status"`
	Priority    string                 `json:"priority"`
	Assignee    string                 `json:"assignee"`
	CreatedAt   *models.CustomDateTime `json:"createdAt,omitempty"`
}

func (r taskRecord) rid() *models.RecordID { return r.ID }

func encTask(t domain.Task) taskRecord {
	return taskRecord{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Assignee:    t.Assignee,
		CreatedAt:   encTime(t.CreatedAt),
	}
}

func decTask(r taskRecord) domain.Task {
	return domain.Task{
		ID:          recordKey(r.ID),
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Assignee:    r.Assignee,
		CreatedAt:   decTime(r.CreatedAt),
	}
}

type assetRecord struct {
	ID       *models.RecordID `json:"id,omitempty"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    float64          `json:"price"`
	Status   string           `json:"status"`
	Owner    string           `json:"owner"`
	Note     string           `json:"note"`
}

func (r assetRecord) rid() *models.RecordID { return r.ID }

func encAsset(a domain.Asset) assetRecord {
	return assetRecord{
		Name:     a.Name,
		Category: a.Category,
		Price:    a.Price,
		Status:   a.Status,
		Owner:    a.Owner,
		Note:     a.Note,
	}
}

func decAsset(r assetRecord) domain.Asset {
	return domain.Asset{
		ID:       recordKey(r.ID),
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Status:   r.Status,
		Owner:    r.Owner,
		Note:     r.Note,
	}
}

type expenseRecord struct {
	ID       *models.RecordID `json:"id,omitempty"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Amount   float64          `json:"amount"`
	Status   string           `json:"status"`
	Note     string           `json:"note"`
}

func (r expenseRecord) rid() *models.RecordID { return r.ID }

func encExpense(e domain.Expense) expenseRecord {
	return expenseRecord{
		Name:     e.Name,
		Category: e.Category,
		Amount:   e.Amount,
		Status:   e.Status,
		Note:     e.Note,
	}
}

func decExpense(r expenseRecord) domain.Expense {
	return domain.Expense{
		ID:       recordKey(r.ID),
		Name:     r.Name,
		Category: r.Category,
		Amount:   r.Amount,
		Status:   r.Status,
		Note:     r.Note,
	}
}

type milestoneRecord struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Phase       string           `json:"phase"`
	Description string           `json:"description"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	IsComplete  bool             `json:"isComplete"`
	IsCurrent   bool             `json:"isCurrent"`
}

func (r milestoneRecord) rid() *models.RecordID { return r.ID }

func encMilestone(m domain.Milestone) milestoneRecord {
	return milestoneRecord{
		Phase:       m.Phase,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsComplete:  m.IsComplete,
		IsCurrent:   m.IsCurrent,
	}
}

func decMilestone(r milestoneRecord) domain.Milestone {
	return domain.Milestone{
		ID:          recordKey(r.ID),
		Phase:       r.Phase,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsComplete:  r.IsComplete,
		IsCurrent:   r.IsCurrent,
	}
}

type ideaRecord struct {
	ID        *models.RecordID       `json:"id,omitempty"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Category  string                 `json:"category"`
	Color     string                 `json:"color"`
	CreatedAt *models.CustomDateTime `json:"createdAt,omitempty"`
}

func (r ideaRecord) rid() *models.RecordID { return r.ID }

func encIdea(i domain.Idea) ideaRecord {
	return ideaRecord{
		Title:     i.Title,
		Content:   i.Content,
		Category:  i.Category,
		Color:     i.Color,
		CreatedAt: encTime(i.CreatedAt),
	}
}

func decIdea(r ideaRecord) domain.Idea {
	return domain.Idea{
		ID:        recordKey(r.ID),
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Color:     r.Color,
		CreatedAt: decTime(r.CreatedAt),
	}
}

type competitorRecord struct {
	ID         *models.RecordID `json:"id,omitempty"`
	Name       string           `json:"name"`
	LogoURL    string           `json:"logoUrl"`
	Strengths  []string         `json:"strengths"`
	Weaknesses []string         `json:"weaknesses"`
	URL        string           `json:"url"`
	RichNotes  string           `json:"richNotes"`
	Images     []string         `json:"images"`
}

func (r competitorRecord) rid() *models.RecordID { return r.ID }

func encCompetitor(c domain.Competitor) competitorRecord {
	return competitorRecord{
		Name:       c.Name,
		LogoURL:    c.LogoURL,
		Strengths:  c.Strengths,
		Weaknesses: c.Weaknesses,
		URL:        c.URL,
		RichNotes:  c.RichNotes,
		Images:     c.Images,
	}
}

func decCompetitor(r competitorRecord) domain.Competitor {
	return domain.Competitor{
		ID:         recordKey(r.ID),
		Name:       r.Name,
		LogoURL:    r.LogoURL,
		Strengths:  r.Strengths,
		Weaknesses: r.Weaknesses,
		URL:        r.URL,
		RichNotes:  r.RichNotes,
		Images:     r.Images,
	}
}

type activityRecord struct {
	ID          *models.RecordID       `json:"id,omitempty"`
	Action      string                 `json:"action"`
	Entity      string                 `json:"entity"`
	Description string                 `json:"description"`
	User        string                 `json:"user"`
	CreatedAt   *models.CustomDateTime `json:"createdAt,omitempty"`
}

func (r activityRecord) rid() *models.RecordID { return r.ID }

func encActivity(a domain.Activity) activityRecord {
	return activityRecord{
		Action:      string(a.Action),
		Entity:      a.Entity,
		Description: a.Description,
		User:        a.User,
		CreatedAt:   encTime(a.CreatedAt),
	}
}

func decActivity(r activityRecord) domain.Activity {
	return domain.Activity{
		ID:          recordKey(r.ID),
		Action:      domain.Action(r.Action),
		Entity:      r.Entity,
		Description: r.Description,
		User:        r.User,
		CreatedAt:   decTime(r.CreatedAt),
	}
}

type settingsRecord struct {
	ID                *models.RecordID `json:"id,omitempty"`
	TotalBudget       float64          `json:"totalBudget"`
	LaunchDate        string           `json:"launchDate"`
	RevenuePerStudent float64          `json:"revenuePerStudent"`
}

func (r settingsRecord) rid() *models.RecordID { return r.ID }

// Durable collection constructors, one per table.

func Tasks(conn *Conn) Collection[domain.Task] {
	return NewSurreal(conn, "tasks", encTask, decTask)
}

func Assets(conn *Conn) Collection[domain.Asset] {
	return NewSurreal(conn, "assets", encAsset, decAsset)
}

func Expenses(conn *Conn) Collection[domain.Expense] {
	return NewSurreal(conn, "expenses", encExpense, decExpense)
}

func Milestones(conn *Conn) Collection[domain.Milestone] {
	return NewSurreal(conn, "milestones", encMilestone, decMilestone)
}

func Ideas(conn *Conn) Collection[domain.Idea] {
	return NewSurreal(conn, "ideas", encIdea, decIdea)
}

func Competitors(conn *Conn) Collection[domain.Competitor] {
	return NewSurreal(conn, "competitors", encCompetitor, decCompetitor)
}

func recordKey(id *models.RecordID) string {
	if id == nil {
		return ""
	}
	return fmt.Sprint(id.ID)
}

func encTime(t time.Time) *models.CustomDateTime {
	if t.IsZero() {
		return nil
	}
	return &models.CustomDateTime{Time: t}
}

func decTime(d *models.CustomDateTime) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
