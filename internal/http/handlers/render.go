package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page is the envelope every template receives: the shared shell plus the
// screen's own data and any banner messages.
type Page struct {
	Shell Shell
	Title string
	Error string
	Flash string
	Data  any
}

// Renderer renders console views. Handlers never call c.HTML directly so
// the shell is composed in exactly one place.
type Renderer struct {
	shell *ShellBuilder
}

func NewRenderer(shell *ShellBuilder) *Renderer {
	return &Renderer{shell: shell}
}

func (r *Renderer) Page(c *gin.Context, status int, name, title string, data any) {
	c.HTML(status, name, Page{
		Shell: r.shell.Build(c),
		Title: title,
		Error: c.Query("error"),
		Flash: c.Query("message"),
		Data:  data,
	})
}

// PageError re-renders a view with an error banner, e.g. after a failed
// form submission or an unreachable backend.
func (r *Renderer) PageError(c *gin.Context, status int, name, title, errMsg string, data any) {
	c.HTML(status, name, Page{
		Shell: r.shell.Build(c),
		Title: title,
		Error: errMsg,
		Data:  data,
	})
}

// NotFound is the console's own 404 view (inside the shell when signed in).
func (r *Renderer) NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "The page you are looking for does not exist."
	}

	r.PageError(c, http.StatusNotFound, "error", "Not found", message, nil)
}
