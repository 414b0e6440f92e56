package dto

import (
	"time"

	"studioboard/internal/domain"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Status      string `json:"status" binding:"omitempty,oneof=Pending InProgress Done"`
	Priority    string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Assignee    string `json:"assignee" binding:"max=100"`
}

func (r CreateTaskRequest) ToDomain() domain.Task {
	t := domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Assignee:    r.Assignee,
		CreatedAt:   time.Now().UTC(),
	}
	if t.Status == "" {
		t.Status = domain.StatusPending
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	return t
}

// UpdateTaskRequest is a partial update: nil means "leave unchanged".
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *string `json:"status" binding:"omitempty,oneof=Pending InProgress Done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	Assignee    *string `json:"assignee" binding:"omitempty,max=100"`
}

// Apply shallow-merges the set fields over the existing record.
func (r UpdateTaskRequest) Apply(t domain.Task) domain.Task {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
	if r.Assignee != nil {
		t.Assignee = *r.Assignee
	}
	return t
}
