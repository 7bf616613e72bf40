package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/payroll"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type PayrollReader interface {
	ListPayroll(ctx context.Context, token, period, status string) ([]payroll.Entry, error)
	PayrollSummary(ctx context.Context, token, period string) (payroll.Summary, error)
}

type PayrollHandler struct {
	api      PayrollReader
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewPayrollHandler(api PayrollReader, renderer *Renderer, policy *ErrorPolicy) *PayrollHandler {
	return &PayrollHandler{api: api, renderer: renderer, policy: policy}
}

type payrollView struct {
	Entries []payroll.Entry
	Summary payroll.Summary
	Period  string
	Status  string
	Total   float64
}

func (h *PayrollHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	period := c.Query("period")
	status := c.Query("status")

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	entries, err := h.api.ListPayroll(cctx, sess.Token, period, status)

	if h.policy.Handle(c, err) {
		return
	}

	summary, err := h.api.PayrollSummary(cctx, sess.Token, period)

	if h.policy.Handle(c, err) {
		return
	}

	var total float64

	for _, e := range entries {
		total += e.NetSalary
	}

	h.renderer.Page(c, http.StatusOK, "payroll", "Payroll", payrollView{
		Entries: entries,
		Summary: summary,
		Period:  period,
		Status:  status,
		Total:   total,
	})
}
