package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/settings"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

type SettingsEditor interface {
	GetSettings(ctx context.Context, token string) (settings.Settings, error)
	UpdateSettings(ctx context.Context, token string, req settings.UpdateSettingsRequest) (settings.Settings, error)
}

type SettingsHandler struct {
	api      SettingsEditor
	renderer *Renderer
	policy   *ErrorPolicy
}

func NewSettingsHandler(api SettingsEditor, renderer *Renderer, policy *ErrorPolicy) *SettingsHandler {
	return &SettingsHandler{api: api, renderer: renderer, policy: policy}
}

type settingsView struct {
	Settings settings.Settings
	Fields   map[string]string
}

func (h *SettingsHandler) Page(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	current, err := h.api.GetSettings(cctx, sess.Token)

	if h.policy.Handle(c, err) {
		return
	}

	h.renderer.Page(c, http.StatusOK, "settings", "Settings", settingsView{Settings: current})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	sess, _ := middlewares.SessionFromContext(c)

	var form settings.UpdateSettingsRequest

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "settings", "Settings", settingsView{
			Settings: settings.Settings{
				Timezone:           form.Timezone,
				DateFormat:         form.DateFormat,
				Currency:           form.Currency,
				EmailNotifications: form.EmailNotifications,
				WeeklyDigest:       form.WeeklyDigest,
			},
			Fields: fields,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	_, err := h.api.UpdateSettings(cctx, sess.Token, form)

	if h.policy.Handle(c, err) {
		return
	}

	c.Redirect(http.StatusFound, "/settings?message="+url.QueryEscape("Settings saved"))
}
