package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/api/http/handler"
	"github.com/tenangapp/tenang_backend/internal/api/http/middleware"
	"github.com/tenangapp/tenang_backend/internal/service/notification"
	"github.com/tenangapp/tenang_backend/internal/service/reminder"
	"github.com/tenangapp/tenang_backend/pkg/database"
	pasetotoken "github.com/tenangapp/tenang_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	DB              *database.DB
	Redis           *redis.Client
	NotificationSvc notification.Service
	ReminderSvc     reminder.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	reminderH := handler.NewReminderHandler(r.p.ReminderSvc)

	api := app.Group("/api/v1")

	r.registerNotificationRoutes(api, notificationH, authRequired)
	r.registerReminderRoutes(api, reminderH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.DB.Ping(c.Context()) == nil &&
				r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
