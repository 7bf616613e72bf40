package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
	"github.com/sabari1933/hrconsole/internal/session"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

// ErrorPolicy is the single place the console reacts to upstream failures.
// Screens hand every fetch error here instead of re-implementing the 401
// dance themselves, so the policy can not drift between screens.
//
//	401          -> clear session, redirect to /login
//	404          -> not-found view
//	unavailable  -> transient error view, user may retry
//	other status -> error view with the backend's message
type ErrorPolicy struct {
	store    session.Store
	renderer *Renderer
	log      *slog.Logger
}

func NewErrorPolicy(store session.Store, renderer *Renderer, log *slog.Logger) *ErrorPolicy {
	return &ErrorPolicy{store: store, renderer: renderer, log: log}
}

// Handle writes the response for err and returns true, or returns false for
// a nil error. Callers: if policy.Handle(c, err) { return }.
func (p *ErrorPolicy) Handle(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, upstream.ErrAuthExpired):
		p.forceLogin(c)

	case errors.Is(err, upstream.ErrNotFound):
		p.renderer.NotFound(c, "")

	case errors.Is(err, upstream.ErrUnavailable):
		p.log.Warn("upstream unavailable", "path", c.Request.URL.Path, "err", err)
		p.renderer.PageError(c, http.StatusServiceUnavailable, "error", "Service unavailable",
			"The HR service is not reachable right now. Please try again.", nil)

	default:
		var statusErr *upstream.StatusError

		status := http.StatusBadGateway
		message := "The HR service returned an unexpected error."

		if errors.As(err, &statusErr) && statusErr.Message != "" {
			message = statusErr.Message
		}

		p.log.Error("upstream error", "path", c.Request.URL.Path, "err", err)
		p.renderer.PageError(c, status, "error", "Something went wrong", message, nil)
	}

	c.Abort()
	return true
}

// forceLogin implements the two-tier check's second tier: the token passed
// the presence check but the backend rejected it. The session must be fully
// cleared before the redirect is written, otherwise the login page's own
// guard would bounce the user straight back and loop.
func (p *ErrorPolicy) forceLogin(c *gin.Context) {
	if id, ok := middlewares.SessionIDFromContext(c); ok {
		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		if err := p.store.Clear(ctx, id); err != nil {
			p.log.Error("session clear failed", "err", err)
		}
	}

	ClearSessionCookie(c)

	c.Redirect(http.StatusFound, middlewares.LoginPath)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
}
