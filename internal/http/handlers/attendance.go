package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/attendance"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type AttendanceReader interface {
	ListAttendance(ctx context.Context, token string, filter attendance.Filter) ([]attendance.Record, error)
	AttendanceSummary(ctx context.Context, token, dateRange string) (attendance.Summary, error)
}

type AttendanceHandler struct {
	api      AttendanceReader
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewAttendanceHandler(api AttendanceReader, renderer *Renderer, policy *ErrorPolicy) *AttendanceHandler {
	return &AttendanceHandler{api: api, renderer: renderer, policy: policy}
}

type attendanceView struct {
	Records []attendance.Record
	Summary attendance.Summary
	Status  string
	Search  string
	Range   string
}

func (h *AttendanceHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	filter := attendance.Filter{
		Status: c.Query("status"),
		Search: strings.TrimSpace(c.Query("q")),
		Range:  c.DefaultQuery("range", "today"),
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	records, err := h.api.ListAttendance(cctx, sess.Token, filter)

	if h.policy.Handle(c, err) {
		return
	}

	summary, err := h.api.AttendanceSummary(cctx, sess.Token, filter.Range)

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "attendance", "Attendance", attendanceView{
		Records: records,
		Summary: summary,
		Status:  filter.Status,
		Search:  filter.Search,
		Range:   filter.Range,
	})
}
