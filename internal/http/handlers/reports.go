package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/report"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type ReportReader interface {
	ReportOverview(ctx context.Context, token, period string) (report.Overview, error)
}

type ReportsHandler struct {
	api      ReportReader
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewReportsHandler(api ReportReader, renderer *Renderer, policy *ErrorPolicy) *ReportsHandler {
	return &ReportsHandler{api: api, renderer: renderer, policy: policy}
}

type reportsView struct {
	Overview report.Overview
	Period   string
}

func (h *ReportsHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	period := c.DefaultQuery("period", "month")

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	overview, err := h.api.ReportOverview(cctx, sess.Token, period)

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "reports", "Reports", reportsView{
		Overview: overview,
		Period:   period,
	})
}
