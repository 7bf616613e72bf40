package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/session"
)

const (
	// SessionCookieName carries the opaque session ID, never the token.
	SessionCookieName = "hrconsole_session"

	LoginPath = "/login"

	// DefaultLanding is where authenticated users end up when they have no
	// better destination: "/" (the dashboard).
	DefaultLanding = "/"
)

// SessionGate decides, per navigation, whether the requested view may render
// or the user must be redirected. It checks token PRESENCE only; validity is
// the backend's call, surfaced later as a 401 on a data fetch.
type SessionGate struct {
	store session.Store
	log   *slog.Logger
}

func NewSessionGate(store session.Store, log *slog.Logger) *SessionGate {
	return &SessionGate{store: store, log: log}
}

// LoadSession resolves the session once per request and stashes it on the
// context. Every later check reads the resolved value, so a request is never
// half-authenticated.
func (g *SessionGate) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)

		if err != nil || id == "" {
			c.Next()
			return
		}

		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		sess, err := g.store.Load(ctx, id)

		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				// store trouble reads as signed-out, never as signed-in
				g.log.Error("session load failed", "err", err)
			}

			c.Next()
			return
		}

		c.Set(CtxSessionID, id)
		c.Set(CtxSession, sess)

		c.Next()
	}
}

// RequireSession guards protected routes. Without a token nothing of the
// target view renders; the browser is sent to the login form with the
// attempted path carried along for the post-login return trip.
func (g *SessionGate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)

		if !ok || !sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, loginURLFor(c))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RedirectIfAuthenticated guards public-only routes (login, register): an
// already-authenticated user never sees the login form again.
func (g *SessionGate) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)

		if ok && sess.IsAuthenticated() {
			c.Redirect(http.StatusFound, DefaultLanding)
			c.Abort()
			return
		}

		c.Next()
	}
}

func SessionFromContext(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(CtxSession)

	if !ok {
		return session.Session{}, false
	}

	sess, ok := v.(session.Session)

	return sess, ok
}

func SessionIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxSessionID)

	if !ok {
		return "", false
	}

	id, ok := v.(string)

	return id, ok
}

func loginURLFor(c *gin.Context) string {
	target := LoginPath

	// only GET navigations are worth returning to
	if c.Request.Method == http.MethodGet {
		if next := SafeReturnPath(c.Request.URL.RequestURI()); next != "" && next != LoginPath {
			target += "?next=" + url.QueryEscape(next)
		}
	}

	return target
}

// SafeReturnPath accepts only local absolute paths, so a crafted next
// parameter can never bounce the user off-site after login.
func SafeReturnPath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return ""
	}

	return p
}
