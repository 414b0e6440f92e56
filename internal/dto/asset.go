package dto

import "studioboard/internal/domain"

type CreateAssetRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=200"`
	Category string  `json:"category" binding:"required,oneof=Production Infrastructure Electronics Licenses Furniture"`
	Price    float64 `json:"price" binding:"gte=0"`
	Status   string  `json:"status" binding:"omitempty,oneof=ToBuy Ordered Received"`
	Owner    string  `json:"owner" binding:"max=100"`
	Note     string  `json:"note" binding:"max=2000"`
}

func (r CreateAssetRequest) ToDomain() domain.Asset {
	a := domain.Asset{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Status:   r.Status,
		Owner:    r.Owner,
		Note:     r.Note,
	}
	if a.Status == "" {
		a.Status = domain.AssetStatusToBuy
	}
	return a
}

type UpdateAssetRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Category *string  `json:"category" binding:"omitempty,oneof=Production Infrastructure Electronics Licenses Furniture"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Status   *string  `json:"status" binding:"omitempty,oneof=ToBuy Ordered Received"`
	Owner    *string  `json:"owner" binding:"omitempty,max=100"`
	Note     *string  `json:"note" binding:"omitempty,max=2000"`
}

func (r UpdateAssetRequest) Apply(a domain.Asset) domain.Asset {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Category != nil {
		a.Category = *r.Category
	}
	if r.Price != nil {
		a.Price = *r.Price
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.Owner != nil {
		a.Owner = *r.Owner
	}
	if r.Note != nil {
		a.Note = *r.Note
	}
	return a
}
