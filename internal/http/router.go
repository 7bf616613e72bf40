package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/sabari1933/hrconsole/internal/config"
	"github.com/sabari1933/hrconsole/internal/http/handlers"
	"github.com/sabari1933/hrconsole/internal/http/middlewares"
	"github.com/sabari1933/hrconsole/internal/http/templates"
	"github.com/sabari1933/hrconsole/internal/observability"
	"github.com/sabari1933/hrconsole/internal/session"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

func NewRouter(
	cfg config.Config,
	log *slog.Logger,
	store session.Store,
	api *upstream.Client,
	prom *observability.Prom,
	registry *prometheus.Registry,
	ping func() error,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(1 << 20))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware("hrconsole"))
	}

	tmpl, err := templates.Load()

	if err != nil {
		// templates are embedded; a parse failure means a broken build
		panic(err)
	}

	r.SetHTMLTemplate(tmpl)

	gate := middlewares.NewSessionGate(store, log)
	r.Use(gate.LoadSession())

	// health
	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// Wire up the screens
	shell := handlers.NewShellBuilder(api)
	renderer := handlers.NewRenderer(shell)
	policy := handlers.NewErrorPolicy(store, renderer, log)

	authHandler := handlers.NewAuthHandler(api, store, renderer, cfg, log)
	dashboardHandler := handlers.NewDashboardHandler(api, renderer, policy)
	employeesHandler := handlers.NewEmployeesHandler(api, renderer, policy)
	attendanceHandler := handlers.NewAttendanceHandler(api, renderer, policy)
	payrollHandler := handlers.NewPayrollHandler(api, renderer, policy)
	reportsHandler := handlers.NewReportsHandler(api, renderer, policy)
	companyHandler := handlers.NewCompanyHandler(api, renderer, policy)
	settingsHandler := handlers.NewSettingsHandler(api, renderer, policy)
	pagesHandler := handlers.NewPagesHandler(renderer)

	// credential forms are rate limited by IP
	loginLimiter := middlewares.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	// public-only: signed-in users bounce back to the dashboard
	public := r.Group("/", gate.RedirectIfAuthenticated())
	public.GET("/login", authHandler.LoginPage)
	public.POST("/login", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Login)
	public.GET("/register", authHandler.RegisterPage)
	public.POST("/register", loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP), authHandler.Register)

	// everything else sits behind the session gate
	private := r.Group("/", gate.RequireSession())
	private.GET("/", dashboardHandler.Page)
	private.POST("/logout", authHandler.Logout)

	private.GET("/home", employeesHandler.ListPage)
	private.GET("/create", employeesHandler.CreatePage)
	private.POST("/create", employeesHandler.Create)
	private.GET("/read/:id", employeesHandler.DetailPage)
	private.GET("/edit/:id", employeesHandler.EditPage)
	private.POST("/edit/:id", employeesHandler.Update)
	private.POST("/delete/:id", employeesHandler.Delete)

	private.GET("/attendance", attendanceHandler.Page)
	private.GET("/payroll", payrollHandler.Page)
	private.GET("/reports", reportsHandler.Page)
	private.GET("/company", companyHandler.Page)
	private.POST("/company", companyHandler.Update)
	private.GET("/settings", settingsHandler.Page)
	private.POST("/settings", settingsHandler.Update)
	private.GET("/help", pagesHandler.Help)
	private.GET("/privacy", pagesHandler.Privacy)

	// unknown paths never render anything, they fall to one side of the gate
	r.NoRoute(func(c *gin.Context) {
		if sess, ok := middlewares.SessionFromContext(c); ok && sess.IsAuthenticated() {
			c.Redirect(302, middlewares.DefaultLanding)
			return
		}

		c.Redirect(302, middlewares.LoginPath)
	})

	return r
}
