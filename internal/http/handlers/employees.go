package handlers

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/employee"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

const employeesPerPage = 10

// EmployeeDirectory is the slice of the upstream client the employee
// screens need.
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context, token string) ([]employee.Employee, error)
	GetEmployee(ctx context.Context, token, id string) (employee.Employee, error)
	CreateEmployee(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error)
	UpdateEmployee(ctx context.Context, token, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, token, id string) error
}

type EmployeesHandler struct {
	api      EmployeeDirectory
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewEmployeesHandler(api EmployeeDirectory, renderer *Renderer, policy *ErrorPolicy) *EmployeesHandler {
	return &EmployeesHandler{api: api, renderer: renderer, policy: policy}
}

// employeesView backs the list screen: the filtered page plus the controls'
// sticky state.
type employeesView struct {
	Items    []employee.Employee
	Query    string
	Status   string
	Sort     string
	Dir      string
	Page     int
	Pages    int
	Total    int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
}

// ListPage fetches the directory wholesale and filters, sorts and paginates
// locally, mirroring how the table behaves in the browser.
func (h *EmployeesHandler) ListPage(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	all, err := h.api.ListEmployees(cctx, sess.Token)

	if h.policy.Handle(c, err) {
		return
	}

	view := employeesView{
		Query:  strings.TrimSpace(c.Query("q")),
		Status: c.Query("status"),
		Sort:   c.DefaultQuery("sort", "name"),
		Dir:    c.DefaultQuery("dir", "asc"),
		Page:   pageParam(c),
	}

	filtered := filterEmployees(all, view.Query, view.Status)
	sortEmployees(filtered, view.Sort, view.Dir)

	view.Total = len(filtered)
	view.Pages = (len(filtered) + employeesPerPage - 1) / employeesPerPage

	if view.Pages == 0 {
		view.Pages = 1
	}

	if view.Page > view.Pages {
		view.Page = view.Pages
	}

	start := (view.Page - 1) * employeesPerPage
	end := start + employeesPerPage

	if end > len(filtered) {
		end = len(filtered)
	}

	view.Items = filtered[start:end]
	view.HasPrev = view.Page > 1
	view.HasNext = view.Page < view.Pages
	view.PrevPage = view.Page - 1
	view.NextPage = view.Page + 1

	h.renderer.Page(c, http.StatusOK, "employees", "Employees", view)
}

type employeeFormView struct {
	Employee employee.Employee
	Fields   map[string]string
	IsEdit   bool
}

func (h *EmployeesHandler) CreatePage(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, "employee_form", "Add employee", employeeFormView{})
}

func (h *EmployeesHandler) Create(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	var form employee.CreateEmployeeRequest

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "employee_form", "Add employee", employeeFormView{
			Employee: employee.Employee{
				Name:       form.Name,
				Email:      form.Email,
				Department: form.Department,
				Position:   form.Position,
				Address:    form.Address,
				DOB:        form.DOB,
				Salary:     form.Salary,
			},
			Fields: fields,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	_, err := h.api.CreateEmployee(cctx, sess.Token, form)

	if h.policy.Handle(c, err) {
		return
	}

	c.Redirect(http.StatusFound, "/home?message="+url.QueryEscape("Employee created"))
}

func (h *EmployeesHandler) DetailPage(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	emp, err := h.api.GetEmployee(cctx, sess.Token, c.Param("id"))

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "employee_detail", emp.Name, emp)
}

func (h *EmployeesHandler) EditPage(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	emp, err := h.api.GetEmployee(cctx, sess.Token, c.Param("id"))

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "employee_form", "Edit employee", employeeFormView{
		Employee: emp,
		IsEdit:   true,
	})
}

func (h *EmployeesHandler) Update(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)
	id := c.Param("id")

	var form employee.UpdateEmployeeRequest

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "employee_form", "Edit employee", employeeFormView{
			Employee: employee.Employee{
				ID:         id,
				Name:       form.Name,
				Email:      form.Email,
				Department: form.Department,
				Position:   form.Position,
				Address:    form.Address,
				DOB:        form.DOB,
				Salary:     form.Salary,
				Status:     form.Status,
			},
			Fields: fields,
			IsEdit: true,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	_, err := h.api.UpdateEmployee(cctx, sess.Token, id, form)

	if h.policy.Handle(c, err) {
		return
	}

	c.Redirect(http.StatusFound, "/read/"+url.PathEscape(id)+"?message="+url.QueryEscape("Employee updated"))
}

func (h *EmployeesHandler) Delete(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	err := h.api.DeleteEmployee(cctx, sess.Token, c.Param("id"))

	if h.policy.Handle(c, err) {
		return
	}

	c.Redirect(http.StatusFound, "/home?message="+url.QueryEscape("Employee deleted"))
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))

	if err != nil || page < 1 {
		return 1
	}

	return page
}

func filterEmployees(all []employee.Employee, query, status string) []employee.Employee {
	out := make([]employee.Employee, 0, len(all))
	query = strings.ToLower(query)

	for _, e := range all {
		if status != "" && e.Status != status {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.Email), query) &&
			!strings.Contains(strings.ToLower(e.Department), query) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func sortEmployees(items []employee.Employee, sortBy, dir string) {
	less := func(a, b employee.Employee) bool {
		switch sortBy {
		case "salary":
			return a.Salary < b.Salary
		case "department":
			if a.Department != b.Department {
				return a.Department < b.Department
			}
			return a.Name < b.Name
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if dir == "desc" {
			return less(items[j], items[i])
		}

		return less(items[i], items[j])
	})
}
