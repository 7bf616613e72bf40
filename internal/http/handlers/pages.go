package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static console screens. They still sit behind the
// session gate so the shell renders with the signed-in user.
type PagesHandler struct {
	renderer *Renderer
}

func NewPagesHandler(renderer *Renderer) *PagesHandler {
	return &PagesHandler{renderer: renderer}
}

func (h *PagesHandler) Help(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, "help", "Help center", nil)
}

func (h *PagesHandler) Privacy(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, "privacy", "Privacy policy", nil)
}
