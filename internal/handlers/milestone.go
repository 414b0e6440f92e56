package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/domain"
	"studioboard/internal/dto"
	"studioboard/internal/service"
)

type MilestoneHandler struct {
	svc *service.Resource[domain.Milestone]
}

func NewMilestoneHandler(svc *service.Resource[domain.Milestone]) *MilestoneHandler {
	return &MilestoneHandler{svc: svc}
}

// List godoc
// @Summary  List roadmap milestones
// @Tags     milestones
// @Produce  json
// @Success  200  {array}  domain.Milestone
// @Router   /milestones [get]
func (h *MilestoneHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Create a milestone
// @Tags     milestones
// @Accept   json
// @Produce  json
// @Param    body  body      dto.CreateMilestoneRequest  true  "Milestone body"
// @Success  201   {object}  domain.Milestone
// @Failure  400   {object}  map[string]string
// @Router   /milestones [post]
func (h *MilestoneHandler) Create(c *gin.Context) {
	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Update godoc
// @Summary  Update a milestone
// @Tags     milestones
// @Accept   json
// @Produce  json
// @Param    id    path      string  true  "Milestone ID"
// @Param    body  body      dto.UpdateMilestoneRequest  true  "Partial update"
// @Success  200   {object}  domain.Milestone
// @Failure  404   {object}  map[string]string
// @Router   /milestones/{id} [put]
func (h *MilestoneHandler) Update(c *gin.Context) {
	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(old domain.Milestone) (domain.Milestone, error) {
		return req.Apply(old), nil
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete godoc
// @Summary  Delete a milestone
// @Tags     milestones
// @Produce  json
// @Param    id  path  string  true  "Milestone ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /milestones/{id} [delete]
func (h *MilestoneHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "milestone deleted"})
}
