package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/service"
)

// recentActivities is the page size for the dashboard feed.
const recentActivities = 5

type ActivityHandler struct {
	svc *service.ActivityLogger
}

func NewActivityHandler(svc *service.ActivityLogger) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List godoc
// @Summary  Recent activity feed
// @Tags     activities
// @Produce  json
// @Success  200  {array}  domain.Activity
// @Router   /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Recent(c.Request.Context(), recentActivities))
}
