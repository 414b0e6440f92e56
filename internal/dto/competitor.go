package dto

import "studioboard/internal/domain"

type CreateCompetitorRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=200"`
	LogoURL    string   `json:"logoUrl" binding:"omitempty,max=500"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	URL        string   `json:"url" binding:"omitempty,max=500"`
	RichNotes  string   `json:"richNotes" binding:"max=20000"`
	Images     []string `json:"images"`
}

func (r CreateCompetitorRequest) ToDomain() domain.Competitor {
	return domain.Competitor{
		Name:       r.Name,
		LogoURL:    r.LogoURL,
		Strengths:  r.Strengths,
		Weaknesses: r.Weaknesses,
		URL:        r.URL,
		RichNotes:  r.RichNotes,
		Images:     r.Images,
	}
}

type UpdateCompetitorRequest struct {
	Name       *string   `json:"name" binding:"omitempty,min=1,max=200"`
	LogoURL    *string   `json:"logoUrl" binding:"omitempty,max=500"`
	Strengths  *[]string `json:"strengths"`
	Weaknesses *[]string `json:"weaknesses"`
	URL        *string   `json:"url" binding:"omitempty,max=500"`
	RichNotes  *string   `json:"richNotes" binding:"omitempty,max=20000"`
	Images     *[]string `json:"images"`
}

func (r UpdateCompetitorRequest) Apply(c domain.Competitor) domain.Competitor {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.LogoURL != nil {
		c.LogoURL = *r.LogoURL
	}
	if r.Strengths != nil {
		c.Strengths = *r.Strengths
	}
	if r.Weaknesses != nil {
		c.Weaknesses = *r.Weaknesses
	}
	if r.URL != nil {
		c.URL = *r.URL
	}
	if r.RichNotes != nil {
		c.RichNotes = *r.RichNotes
	}
	if r.Images != nil {
		c.Images = *r.Images
	}
	return c
}
