package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sabari1933/hrconsole/internal/domain/attendance"
	"github.com/sabari1933/hrconsole/internal/domain/company"
	"github.com/sabari1933/hrconsole/internal/domain/dashboard"
	"github.com/sabari1933/hrconsole/internal/domain/employee"
	"github.com/sabari1933/hrconsole/internal/domain/payroll"
	"github.com/sabari1933/hrconsole/internal/domain/profile"
	"github.com/sabari1933/hrconsole/internal/domain/report"
	"github.com/sabari1933/hrconsole/internal/domain/settings"
)

// Typed operations against the HR backend. One method per endpoint the
// console consumes; the endpoint set mirrors the screens, nothing more.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	AccessToken string          `json:"accessToken"`
	User        profile.Profile `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	var out AuthResult

	err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", "", creds, &out)

	if err != nil {
		return AuthResult{}, err
	}

	return out, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (AuthResult, error) {
	var out AuthResult

	err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", "", reg, &out)

	if err != nil {
		return AuthResult{}, err
	}

	return out, nil
}

// Logout revokes the backend session. Best effort: the local session is
// cleared regardless of the outcome here.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "auth.logout", http.MethodPost, "/auth/logout", token, nil, nil)
}

type listEnvelope[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func (c *Client) ListEmployees(ctx context.Context, token string) ([]employee.Employee, error) {
	var out listEnvelope[employee.Employee]

	err := c.do(ctx, "employees.list", http.MethodGet, "/employees", token, nil, &out)

	if err != nil {
		return nil, err
	}

	return out.Items, nil
}

func (c *Client) GetEmployee(ctx context.Context, token, id string) (employee.Employee, error) {
	var out employee.Employee

	err := c.do(ctx, "employees.get", http.MethodGet, "/employees/"+url.PathEscape(id), token, nil, &out)

	if err != nil {
		return employee.Employee{}, err
	}

	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var out employee.Employee

	err := c.do(ctx, "employees.create", http.MethodPost, "/employees", token, req, &out)

	if err != nil {
		return employee.Employee{}, err
	}

	return out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, token, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var out employee.Employee

	err := c.do(ctx, "employees.update", http.MethodPut, "/employees/"+url.PathEscape(id), token, req, &out)

	if err != nil {
		return employee.Employee{}, err
	}

	return out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token, id string) error {
	return c.do(ctx, "employees.delete", http.MethodDelete, "/employees/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) ListAttendance(ctx context.Context, token string, filter attendance.Filter) ([]attendance.Record, error) {
	q := url.Values{}

	if filter.Status != "" {
		q.Set("status", filter.Status)
	}

	if filter.Search != "" {
		q.Set("q", filter.Search)
	}

	if filter.Range != "" {
		q.Set("range", filter.Range)
	}

	path := "/attendance"

	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out listEnvelope[attendance.Record]

	err := c.do(ctx, "attendance.list", http.MethodGet, path, token, nil, &out)

	if err != nil {
		return nil, err
	}

	return out.Items, nil
}

func (c *Client) AttendanceSummary(ctx context.Context, token, dateRange string) (attendance.Summary, error) {
	path := "/attendance/summary"

	if dateRange != "" {
		path += "?range=" + url.QueryEscape(dateRange)
	}

	var out attendance.Summary

	err := c.do(ctx, "attendance.summary", http.MethodGet, path, token, nil, &out)

	if err != nil {
		return attendance.Summary{}, err
	}

	return out, nil
}

func (c *Client) ListPayroll(ctx context.Context, token, period, status string) ([]payroll.Entry, error) {
	q := url.Values{}

	if period != "" {
		q.Set("period", period)
	}

	if status != "" {
		q.Set("status", status)
	}

	path := "/payroll"

	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out listEnvelope[payroll.Entry]

	err := c.do(ctx, "payroll.list", http.MethodGet, path, token, nil, &out)

	if err != nil {
		return nil, err
	}

	return out.Items, nil
}

func (c *Client) PayrollSummary(ctx context.Context, token, period string) (payroll.Summary, error) {
	path := "/payroll/summary"

	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}

	var out payroll.Summary

	err := c.do(ctx, "payroll.summary", http.MethodGet, path, token, nil, &out)

	if err != nil {
		return payroll.Summary{}, err
	}

	return out, nil
}

func (c *Client) DashboardOverview(ctx context.Context, token string) (dashboard.Overview, error) {
	var out dashboard.Overview

	err := c.do(ctx, "dashboard.overview", http.MethodGet, "/dashboard/overview", token, nil, &out)

	if err != nil {
		return dashboard.Overview{}, err
	}

	return out, nil
}

func (c *Client) ReportOverview(ctx context.Context, token, period string) (report.Overview, error) {
	path := "/reports/overview"

	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}

	var out report.Overview

	err := c.do(ctx, "reports.overview", http.MethodGet, path, token, nil, &out)

	if err != nil {
		return report.Overview{}, err
	}

	return out, nil
}

func (c *Client) GetCompany(ctx context.Context, token string) (company.Company, error) {
	var out company.Company

	err := c.do(ctx, "company.get", http.MethodGet, "/company", token, nil, &out)

	if err != nil {
		return company.Company{}, err
	}

	return out, nil
}

func (c *Client) UpdateCompany(ctx context.Context, token string, req company.UpdateCompanyRequest) (company.Company, error) {
	var out company.Company

	err := c.do(ctx, "company.update", http.MethodPut, "/company", token, req, &out)

	if err != nil {
		return company.Company{}, err
	}

	return out, nil
}

func (c *Client) GetSettings(ctx context.Context, token string) (settings.Settings, error) {
	var out settings.Settings

	err := c.do(ctx, "settings.get", http.MethodGet, "/settings", token, nil, &out)

	if err != nil {
		return settings.Settings{}, err
	}

	return out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, token string, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	var out settings.Settings

	err := c.do(ctx, "settings.update", http.MethodPut, "/settings", token, req, &out)

	if err != nil {
		return settings.Settings{}, err
	}

	return out, nil
}

// NotificationCount feeds the header badge. Callers treat failures as "no
// badge", never as a reason to fail the page.
func (c *Client) NotificationCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}

	err := c.do(ctx, "notifications.count", http.MethodGet, "/notifications/count", token, nil, &out)

	if err != nil {
		return 0, err
	}

	return out.Count, nil
}
