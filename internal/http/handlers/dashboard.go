package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/dashboard"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type DashboardReader interface {
	DashboardOverview(ctx context.Context, token string) (dashboard.Overview, error)
}

type DashboardHandler struct {
	api      DashboardReader
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewDashboardHandler(api DashboardReader, renderer *Renderer, policy *ErrorPolicy) *DashboardHandler {
	return &DashboardHandler{api: api, renderer: renderer, policy: policy}
}

func (h *DashboardHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	overview, err := h.api.DashboardOverview(cctx, sess.Token)

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "dashboard", "Dashboard", overview)
}
