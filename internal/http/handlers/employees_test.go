package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/domain/employee"
	"github.com/sabari1933/hrconsole/internal/http/handlers"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
	"github.com/sabari1933/hrconsole/internal/session"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

// Fake implementation of the handlers.EmployeeDirectory interface

type fakeDirectory struct {
	listFn   func(ctx context.Context, token string) ([]employee.Employee, error)
	getFn    func(ctx context.Context, token, id string) (employee.Employee, error)
	createFn func(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error)
	updateFn func(ctx context.Context, token, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	deleteFn func(ctx context.Context, token, id string) error
}

func (f *fakeDirectory) ListEmployees(ctx context.Context, token string) ([]employee.Employee, error) {
	if f.listFn != nil {
		return f.listFn(ctx, token)
	}

	return nil, nil
}

func (f *fakeDirectory) GetEmployee(ctx context.Context, token, id string) (employee.Employee, error) {
	if f.getFn != nil {
		return f.getFn(ctx, token, id)
	}

	return employee.Employee{}, nil
}

func (f *fakeDirectory) CreateEmployee(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if f.createFn != nil {
		return f.createFn(ctx, token, req)
	}

	return employee.Employee{}, nil
}

func (f *fakeDirectory) UpdateEmployee(ctx context.Context, token, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, token, id, req)
	}

	return employee.Employee{}, nil
}

func (f *fakeDirectory) DeleteEmployee(ctx context.Context, token, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, token, id)
	}

	return nil
}

// employeesRouter mounts the employee screens behind a pre-resolved session,
// with the shared upstream error policy in place.
func employeesRouter(t *testing.T, api handlers.EmployeeDirectory, store session.Store) *gin.Engine {
	t.Helper()

	renderer, r := newRenderer(t)
	policy := handlers.NewErrorPolicy(store, renderer, testLogger())
	h := handlers.NewEmployeesHandler(api, renderer, policy)

	r.Use(func(c *gin.Context) {
		c.Set(middlewares.CtxSessionID, "sid-1")
		c.Set(middlewares.CtxSession, session.Session{Token: "tok"})
	})

	r.GET("/home", h.ListPage)
	r.GET("/create", h.CreatePage)
	r.POST("/create", h.Create)
	r.GET("/read/:id", h.DetailPage)
	r.POST("/delete/:id", h.Delete)

	return r
}

func staffOf(n int) []employee.Employee {
	staff := make([]employee.Employee, 0, n)

	for i := 1; i <= n; i++ {
		staff = append(staff, employee.Employee{
			ID:         fmt.Sprintf("e%02d", i),
			Name:       fmt.Sprintf("Employee %02d", i),
			Email:      fmt.Sprintf("e%02d@example.com", i),
			Department: "Engineering",
			Salary:     float64(40000 + i*1000),
			Status:     "active",
		})
	}

	return staff
}

func TestEmployeesList_FiltersByQueryAndStatus(t *testing.T) {
	api := &fakeDirectory{
		listFn: func(ctx context.Context, token string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: "e1", Name: "Priya Nair", Email: "priya@x.co", Department: "Engineering", Status: "active"},
				{ID: "e2", Name: "Tomas Rivera", Email: "tomas@x.co", Department: "Sales", Status: "active"},
				{ID: "e3", Name: "Priyanka Shah", Email: "ps@x.co", Department: "Sales", Status: "terminated"},
			}, nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/home?q=priya&status=active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	body := w.Body.String()

	if !strings.Contains(body, "Priya Nair") {
		t.Fatalf("expected Priya Nair in the filtered list")
	}

	if strings.Contains(body, "Tomas Rivera") {
		t.Fatalf("Tomas Rivera does not match the query and must be filtered out")
	}

	if strings.Contains(body, "Priyanka Shah") {
		t.Fatalf("terminated staff must be filtered out by status=active")
	}
}

func TestEmployeesList_SortsBySalaryDescending(t *testing.T) {
	api := &fakeDirectory{
		listFn: func(ctx context.Context, token string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: "e1", Name: "Low Earner", Salary: 30000, Status: "active"},
				{ID: "e2", Name: "Top Earner", Salary: 90000, Status: "active"},
			}, nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/home?sort=salary&dir=desc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()
	top := strings.Index(body, "Top Earner")
	low := strings.Index(body, "Low Earner")

	if top == -1 || low == -1 || top > low {
		t.Fatalf("expected Top Earner before Low Earner, top=%d low=%d", top, low)
	}
}

func TestEmployeesList_Paginates(t *testing.T) {
	api := &fakeDirectory{
		listFn: func(ctx context.Context, token string) ([]employee.Employee, error) {
			return staffOf(15), nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/home?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()

	if !strings.Contains(body, "Employee 11") || !strings.Contains(body, "Employee 15") {
		t.Fatalf("page 2 should show employees 11-15")
	}

	if strings.Contains(body, "Employee 05") {
		t.Fatalf("page 2 must not show page 1 rows")
	}

	if !strings.Contains(body, "page 2 of 2") {
		t.Fatalf("expected the pagination summary, body=%s", body)
	}
}

func TestEmployeesList_PageBeyondEndClamps(t *testing.T) {
	api := &fakeDirectory{
		listFn: func(ctx context.Context, token string) ([]employee.Employee, error) {
			return staffOf(3), nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/home?page=99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "Employee 01") {
		t.Fatalf("out-of-range page should clamp to the last page")
	}
}

func TestEmployeesList_ExpiredTokenClearsSessionAndRedirects(t *testing.T) {
	api := &fakeDirectory{
		listFn: func(ctx context.Context, token string) ([]employee.Employee, error) {
			return nil, upstream.ErrAuthExpired
		},
	}

	cleared := false

	store := &fakeStore{
		clearFn: func(ctx context.Context, id string) error {
			cleared = true
			return nil
		},
	}

	r := employeesRouter(t, api, store)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}

	if loc := w.Header().Get("Location"); loc != middlewares.LoginPath {
		t.Fatalf("got location %q, want %q", loc, middlewares.LoginPath)
	}

	// the clear must happen before the redirect or the login page bounces back
	if !cleared {
		t.Fatalf("a rejected token must clear the stored session")
	}
}

func TestEmployeeDetail_NotFound(t *testing.T) {
	api := &fakeDirectory{
		getFn: func(ctx context.Context, token, id string) (employee.Employee, error) {
			return employee.Employee{}, upstream.ErrNotFound
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/read/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestEmployeeCreate_ValidationErrorSkipsUpstream(t *testing.T) {
	called := false

	api := &fakeDirectory{
		createFn: func(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
			called = true
			return employee.Employee{}, nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	// missing email and salary
	w := postForm(r, "/create", url.Values{"name": {"New Person"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}

	if called {
		t.Fatalf("invalid form must not reach the backend")
	}

	// the form re-renders with what the user typed
	if !strings.Contains(w.Body.String(), "New Person") {
		t.Fatalf("expected sticky form values")
	}
}

func TestEmployeeCreate_Success(t *testing.T) {
	api := &fakeDirectory{
		createFn: func(ctx context.Context, token string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
			if token != "tok" {
				t.Errorf("create called with token %q", token)
			}

			return employee.Employee{ID: "e-new", Name: req.Name}, nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	w := postForm(r, "/create", url.Values{
		"name":   {"New Person"},
		"email":  {"new@example.com"},
		"salary": {"52000"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302, body=%s", w.Code, w.Body.String())
	}

	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/home?message=") {
		t.Fatalf("got location %q, want a /home flash redirect", loc)
	}
}

func TestEmployeeDelete_RedirectsWithFlash(t *testing.T) {
	deleted := ""

	api := &fakeDirectory{
		deleteFn: func(ctx context.Context, token, id string) error {
			deleted = id
			return nil
		},
	}

	r := employeesRouter(t, api, session.NewMemoryStore())

	w := postForm(r, "/delete/e42", url.Values{})

	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}

	if deleted != "e42" {
		t.Fatalf("deleted %q, want e42", deleted)
	}
}
