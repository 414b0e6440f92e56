package dto

import "studioboard/internal/domain"

type CreateMilestoneRequest struct {
	Phase       string `json:"phase" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
	IsComplete  bool   `json:"isComplete"`
	IsCurrent   bool   `json:"isCurrent"`
}

func (r CreateMilestoneRequest) ToDomain() domain.Milestone {
	return domain.Milestone{
		Phase:       r.Phase,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsComplete:  r.IsComplete,
		IsCurrent:   r.IsCurrent,
	}
}

type UpdateMilestoneRequest struct {
	Phase       *string `json:"phase" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	StartDate   *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	IsComplete  *bool   `json:"isComplete"`
	IsCurrent   *bool   `json:"isCurrent"`
}

func (r UpdateMilestoneRequest) Apply(m domain.Milestone) domain.Milestone {
	if r.Phase != nil {
		m.Phase = *r.Phase
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.StartDate != nil {
		m.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.EndDate = *r.EndDate
	}
	if r.IsComplete != nil {
		m.IsComplete = *r.IsComplete
	}
	if r.IsCurrent != nil {
		m.IsCurrent = *r.IsCurrent
	}
	return m
}
