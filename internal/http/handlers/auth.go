package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/profile"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
	"github.com/sabari1933/hrconsole/internal/session"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

// Authenticator is the slice of the upstream client the auth screens need.
// Kept small so tests can fake it easily.
type Authenticator interface {
	Login(ctx context.Context, creds upstream.Credentials) (upstream.AuthResult, error)
	Register(ctx context.Context, reg upstream.Registration) (upstream.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	api        Authenticator
	store      session.Store
	renderer   *Renderer
	sessionTTL time.Duration
	secure     bool
	log        *slog.Logger
}

func NewAuthHandler(api Authenticator, store session.Store, renderer *Renderer, cfg config.Config, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		api:        api,
		store:      store,
		renderer:   renderer,
		sessionTTL: cfg.SessionTTL,
		secure:     cfg.Env == "prod",
		log:        log,
	}
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type RegisterForm struct {
	Name     string `form:"name" binding:"required,min=2"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

// authView feeds the login/register templates: sticky values plus inline
// field messages.
type authView struct {
	Email  string
	Name   string
	Next   string
	Fields map[string]string
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, "login", "Sign in", authView{
		Next: middlewares.SafeReturnPath(c.Query("next")),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "login", "Sign in", authView{
			Email:  form.Email,
			Next:   middlewares.SafeReturnPath(form.Next),
			Fields: fields,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	result, err := h.api.Login(cctx, upstream.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})

	if err != nil {
		h.renderLoginError(c, form, err)
		return
	}

	target := middlewares.SafeReturnPath(form.Next)

	if target == "" {
		target = middlewares.DefaultLanding
	}

	if !h.establishSession(c, result) {
		return
	}

	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.renderer.Page(c, http.StatusOK, "register", "Create account", authView{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm

	fields, ok := BindForm(c, &form)

	if !ok {
		h.renderer.Page(c, http.StatusBadRequest, "register", "Create account", authView{
			Name:   form.Name,
			Email:  form.Email,
			Fields: fields,
		})
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	result, err := h.api.Register(cctx, upstream.Registration{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})

	if err != nil {
		h.renderRegisterError(c, form, err)
		return
	}

	if !h.establishSession(c, result) {
		return
	}

	c.Redirect(http.StatusFound, middlewares.DefaultLanding)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess, hasSession := middlewares.SessionFromContext(c)

	if hasSession && sess.IsAuthenticated() {
		cctx, cancel := config.WithTimeout(3 * time.Second)
		defer cancel()

		// revoke upstream best effort; the local clear is what matters
		if err := h.api.Logout(cctx, sess.Token); err != nil {
			h.log.Warn("upstream logout failed", "err", err)
		}
	}

	if id, ok := middlewares.SessionIDFromContext(c); ok {
		cctx, cancel := config.WithTimeout(3 * time.Second)
		defer cancel()

		// clear fully before redirecting, a half-cleared session would
		// bounce the login page right back here
		if err := h.store.Clear(cctx, id); err != nil {
			h.log.Error("session clear failed", "err", err)
		}
	}

	ClearSessionCookie(c)
	c.Redirect(http.StatusFound, middlewares.LoginPath)
}

// establishSession persists the session and only then hands out the cookie.
// A persistence failure means no cookie and an error view: the user is
// either fully signed in or not at all.
func (h *AuthHandler) establishSession(c *gin.Context, result upstream.AuthResult) bool {
	id := uuid.NewString()
	now := time.Now().UTC()

	user := result.User

	if user == (profile.Profile{}) {
		// some backends return only the token; fall back to its claims
		if p, ok := session.TokenProfile(result.AccessToken); ok {
			user = p
		}
	}

	sess := session.Session{
		Token:     result.AccessToken,
		User:      &user,
		CreatedAt: now,
		ExpiresAt: session.ExpiryFor(result.AccessToken, h.sessionTTL),
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	if err := h.store.Save(cctx, id, sess); err != nil {
		h.log.Error("session save failed", "err", err)
		h.renderer.PageError(c, http.StatusInternalServerError, "login", "Sign in",
			"Could not create your session. Please try again.", authView{})
		return false
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName, id, maxAge, "/", "", h.secure, true)

	return true
}

func (h *AuthHandler) renderLoginError(c *gin.Context, form LoginForm, err error) {
	view := authView{
		Email: form.Email,
		Next:  middlewares.SafeReturnPath(form.Next),
	}

	var statusErr *upstream.StatusError

	switch {
	// a 401 from the login endpoint is bad credentials, not an expired session
	case errors.Is(err, upstream.ErrAuthExpired),
		errors.As(err, &statusErr) && statusErr.Status == http.StatusBadRequest:
		h.renderer.PageError(c, http.StatusUnauthorized, "login", "Sign in",
			"Email or password is incorrect.", view)

	case errors.Is(err, upstream.ErrUnavailable):
		h.renderer.PageError(c, http.StatusServiceUnavailable, "login", "Sign in",
			"Authentication service is unavailable. Please try again.", view)

	default:
		h.log.Error("login failed", "err", err)
		h.renderer.PageError(c, http.StatusBadGateway, "login", "Sign in",
			"Could not sign you in. Please try again.", view)
	}
}

func (h *AuthHandler) renderRegisterError(c *gin.Context, form RegisterForm, err error) {
	view := authView{
		Name:  form.Name,
		Email: form.Email,
	}

	var statusErr *upstream.StatusError

	switch {
	case errors.As(err, &statusErr) && statusErr.Status == http.StatusConflict:
		h.renderer.PageError(c, http.StatusConflict, "register", "Create account",
			"That email address is already in use.", view)

	case errors.Is(err, upstream.ErrUnavailable):
		h.renderer.PageError(c, http.StatusServiceUnavailable, "register", "Create account",
			"Registration service is unavailable. Please try again.", view)

	default:
		h.log.Error("registration failed", "err", err)
		h.renderer.PageError(c, http.StatusBadGateway, "register", "Create account",
			"Could not create your account. Please try again.", view)
	}
}
