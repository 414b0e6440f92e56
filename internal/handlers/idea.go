package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/domain"
	"studioboard/internal/dto"
	"studioboard/internal/service"
)

type IdeaHandler struct {
	svc *service.Resource[domain.Idea]
}

func NewIdeaHandler(svc *service.Resource[domain.Idea]) *IdeaHandler {
	return &IdeaHandler{svc: svc}
}

// List godoc
// @Summary  List idea notes
// @Tags     ideas
// @Produce  json
// @Success  200  {array}  domain.Idea
// @Router   /ideas [get]
func (h *IdeaHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Create an idea note
// @Tags     ideas
// @Accept   json
// @Produce  json
// @Param    body  body      dto.CreateIdeaRequest  true  "Idea body"
// @Success  201   {object}  domain.Idea
// @Failure  400   {object}  map[string]string
// @Router   /ideas [post]
func (h *IdeaHandler) Create(c *gin.Context) {
	var req dto.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	i, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

// Update godoc
// @Summary  Update an idea note
// @Tags     ideas
// @Accept   json
// @Produce  json
// @Param    id    path      string  true  "Idea ID"
// @Param    body  body      dto.UpdateIdeaRequest  true  "Partial update"
// @Success  200   {object}  domain.Idea
// @Failure  404   {object}  map[string]string
// @Router   /ideas/{id} [put]
func (h *IdeaHandler) Update(c *gin.Context) {
	var req dto.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	i, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(old domain.Idea) (domain.Idea, error) {
		return req.Apply(old), nil
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// Delete godoc
// @Summary  Delete an idea note
// @Tags     ideas
// @Produce  json
// @Param    id  path  string  true  "Idea ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /ideas/{id} [delete]
func (h *IdeaHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "idea deleted"})
}
