package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/domain"
	"studioboard/internal/dto"
	"studioboard/internal/service"
)

type ExpenseHandler struct {
	svc *service.Resource[domain.Expense]
}

func NewExpenseHandler(svc *service.Resource[domain.Expense]) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// List godoc
// @Summary  List recurring expenses
// @Tags     expenses
// @Produce  json
// @Success  200  {array}  domain.Expense
// @Router   /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Create an expense
// @Tags     expenses
// @Accept   json
// @Produce  json
// @Param    body  body      dto.CreateExpenseRequest  true  "Expense body"
// @Success  201   {object}  domain.Expense
// @Failure  400   {object}  map[string]string
// @Router   /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	e, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// Update godoc
// @Summary  Update an expense
// @Tags     expenses
// @Accept   json
// @Produce  json
// @Param    id    path      string  true  "Expense ID"
// @Param    body  body      dto.UpdateExpenseRequest  true  "Partial update"
// @Success  200   {object}  domain.Expense
// @Failure  404   {object}  map[string]string
// @Router   /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(old domain.Expense) (domain.Expense, error) {
		return req.Apply(old), nil
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Delete godoc
// @Summary  Delete an expense
// @Tags     expenses
// @Produce  json
// @Param    id  path  string  true  "Expense ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
