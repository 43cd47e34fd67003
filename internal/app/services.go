package app

import (
	"go.uber.org/fx"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/repo"
	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
	"github.com/tenangapp/tenang_backend/internal/service/identity"
	"github.com/tenangapp/tenang_backend/internal/service/notification"
	"github.com/tenangapp/tenang_backend/internal/service/reminder"
	"github.com/tenangapp/tenang_backend/pkg/email"
	pasetotoken "github.com/tenangapp/tenang_backend/pkg/paseto"
	"github.com/tenangapp/tenang_backend/pkg/push"
	"github.com/tenangapp/tenang_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideIdentityService,
		ProvideDispatchService,
		ProvideReminderService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideIdentityService(db *repo.Client) identity.Service {
	return identity.New(db)
}

func ProvideDispatchService(db *repo.Client, ident identity.Service, notifs notification.Service, sender push.Sender, cfg *config.Config) dispatch.Service {
	return dispatch.New(dispatch.NewStore(db, notifs), ident, sender, cfg.App)
}

func ProvideReminderService(db *repo.Client, notifs notification.Service, sender push.Sender, smsCli *sms.Client, emailCli *email.Client, cfg *config.Config) reminder.Service {
	return reminder.New(reminder.NewStore(db, notifs), sender, smsCli, emailCli, cfg.App)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
