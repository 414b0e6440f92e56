package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/domain"
	"studioboard/internal/dto"
	"studioboard/internal/service"
)

type AssetHandler struct {
	svc *service.Resource[domain.Asset]
}

func NewAssetHandler(svc *service.Resource[domain.Asset]) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// List godoc
// @Summary  List assets
// @Tags     assets
// @Produce  json
// @Success  200  {array}  domain.Asset
// @Router   /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary  Create an asset
// @Tags     assets
// @Accept   json
// @Produce  json
// @Param    body  body      dto.CreateAssetRequest  true  "Asset body"
// @Success  201   {object}  domain.Asset
// @Failure  400   {object}  map[string]string
// @Router   /assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.svc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update godoc
// @Summary  Update an asset
// @Tags     assets
// @Accept   json
// @Produce  json
// @Param    id    path      string  true  "Asset ID"
// @Param    body  body      dto.UpdateAssetRequest  true  "Partial update"
// @Success  200   {object}  domain.Asset
// @Failure  404   {object}  map[string]string
// @Router   /assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), func(old domain.Asset) (domain.Asset, error) {
		return req.Apply(old), nil
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary  Delete an asset
// @Tags     assets
// @Produce  json
// @Param    id  path  string  true  "Asset ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
}
