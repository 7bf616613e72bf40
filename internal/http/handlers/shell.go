package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/domain/profile"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
)

// Shell is the persistent chrome around every protected view: sidebar
// navigation, header identity chip, notification badge. It performs no auth
// checks of its own; it only ever renders behind the session gate.
type Shell struct {
	Active        string
	Nav           []NavItem
	User          *profile.Profile
	Notifications int
}

type NavItem struct {
	Href  string
	Label string
}

// One fixed nav list for the whole console. Active-route highlighting is
// derived from the request path, never from per-view state, so it can not
// drift from the address bar.
var navItems = []NavItem{
	{Href: "/", Label: "Dashboard"},
	{Href: "/home", Label: "Employees"},
	{Href: "/attendance", Label: "Attendance"},
	{Href: "/payroll", Label: "Payroll"},
	{Href: "/reports", Label: "Reports"},
	{Href: "/company", Label: "Company"},
	{Href: "/settings", Label: "Settings"},
	{Href: "/help", Label: "Help"},
	{Href: "/privacy", Label: "Privacy"},
}

type NotificationCounter interface {
	NotificationCount(ctx context.Context, token string) (int, error)
}

type ShellBuilder struct {
	notifications NotificationCounter
}

func NewShellBuilder(notifications NotificationCounter) *ShellBuilder {
	return &ShellBuilder{notifications: notifications}
}

func (b *ShellBuilder) Build(c *gin.Context) Shell {
	shell := Shell{
		Active: activeRoute(c.Request.URL.Path),
		Nav:    navItems,
	}

	sess, ok := middlewares.SessionFromContext(c)

	if !ok || !sess.IsAuthenticated() {
		return shell
	}

	shell.User = sess.User

	if b.notifications != nil {
		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		// best effort: a failed badge never fails the page
		if count, err := b.notifications.NotificationCount(ctx, sess.Token); err == nil {
			shell.Notifications = count
		}
	}

	return shell
}

// activeRoute collapses detail paths onto their section entry, e.g.
// /read/42 and /edit/42 highlight the Employees item.
func activeRoute(path string) string {
	switch {
	case path == "/":
		return "/"
	case path == "/home" || path == "/create" ||
		strings.HasPrefix(path, "/read/") || strings.HasPrefix(path, "/edit/"):
		return "/home"
	}

	for _, item := range navItems {
		if item.Href != "/" && strings.HasPrefix(path, item.Href) {
			return item.Href
		}
	}

	return path
}
