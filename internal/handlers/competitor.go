package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/domain"
	"studioboard/internal/dto"
	"studioboard/internal/service"
)

type CompetitorHandler struct {
	svc *service.Resource[domain.Competitor]
}

func NewCompetitorHandler(svc *service.Resource[domain.Competitor]) *CompetitorHandler {
	return &CompetitorHandler{svc: svc}
}

// List godoc
// @Summary  List tracked competitors
// @Tags     competitors
// @Produce  json
// @Success  200  {array}  domain.Competitor
// @Router   /competitors [get]
func (h *CompetitorHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Create a competitor entry
// @Tags     competitors
// @Accept   json
// @Produce  json
// @Param    body  body      dto.CreateCompetitorRequest  true  "Competitor body"
// @Success  201   {object}  domain.Competitor
// @Failure  400   {object}  map[string]string
// @Router   /competitors [post]
func (h *CompetitorHandler) Create(c *gin.Context) {
	var req dto.CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cp, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cp)
}

// Update godoc
// @Summary  Update a competitor entry
// @Tags     competitors
// @Accept   json
// @Produce  json
// @Param    id    path      string  true  "Competitor ID"
// @Param    body  body      dto.UpdateCompetitorRequest  true  "Partial update"
// @Success  200   {object}  domain.Competitor
// @Failure  404   {object}  map[string]string
// @Router   /competitors/{id} [put]
func (h *CompetitorHandler) Update(c *gin.Context) {
	var req dto.UpdateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cp, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(old domain.Competitor) (domain.Competitor, error) {
		return req.Apply(old), nil
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cp)
}

// Delete godoc
// @Summary  Delete a competitor entry
// @Tags     competitors
// @Produce  json
// @Param    id  path  string  true  "Competitor ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /competitors/{id} [delete]
func (h *CompetitorHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "competitor deleted"})
}
