package dto

import "studioboard/internal/domain"

type CreateExpenseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	// Category is free-form; historically Software/Utilities/Other.
	Category string  `json:"category" binding:"max=100"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Status   string  `json:"status" binding:"omitempty,oneof=Active Paused Cancelled"`
	Note     string  `json:"note" binding:"max=2000"`
}

func (r CreateExpenseRequest) ToDomain() domain.Expense {
	e := domain.Expense{
		Name:     r.Name,
		Category: r.Category,
		Amount:   r.Amount,
		Status:   r.Status,
		Note:     r.Note,
	}
	if e.Status == "" {
		e.Status = domain.ExpenseStatusActive
	}
	return e
}

type UpdateExpenseRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Category *string  `json:"category" binding:"omitempty,max=100"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Status   *string  `json:"status" binding:"omitempty,oneof=Active Paused Cancelled"`
	Note     *string  `json:"note" binding:"omitempty,max=2000"`
}

func (r UpdateExpenseRequest) Apply(e domain.Expense) domain.Expense {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Category != nil {
		e.Category = *r.Category
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.Note != nil {
		e.Note = *r.Note
	}
	return e
}
