package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/service"
)

type SettingsHandler struct {
	svc *service.Settings
}

func NewSettingsHandler(svc *service.Settings) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary  Read studio settings
// @Tags     settings
// @Produce  json
// @Success  200  {object}  domain.Settings
// @Router   /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Update godoc
// @Summary      Update studio settings
// @Description  Accepts a loose JSON object; unknown or mistyped fields are ignored.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Fields to change"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.svc.Patch(c.Request.Context(), fields)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
