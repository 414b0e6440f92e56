package dto

import (
	"time"

	"studioboard/internal/domain"
)

type CreateIdeaRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Content  string `json:"content" binding:"max=5000"`
	Category string `json:"category" binding:"max=100"`
	Color    string `json:"color" binding:"max=20"`
}

func (r CreateIdeaRequest) ToDomain() domain.Idea {
	return domain.Idea{
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Color:     r.Color,
		CreatedAt: time.Now().UTC(),
	}
}

type UpdateIdeaRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content" binding:"omitempty,max=5000"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	Color    *string `json:"color" binding:"omitempty,max=20"`
}

func (r UpdateIdeaRequest) Apply(i domain.Idea) domain.Idea {
	if r.Title != nil {
		i.Title = *r.Title
	}
	if r.Content != nil {
		i.Content = *r.Content
	}
	if r.Category != nil {
		i.Category = *r.Category
	}
	if r.Color != nil {
		i.Color = *r.Color
	}
	return i
}
