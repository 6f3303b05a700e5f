package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewClientHandler,
		api.NewUserHandler,
		api.NewGiftCardHandler,
		api.NewOrganizationHandler,
		api.NewAccountingHandler,
		api.NewMarketingHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Client       *api.ClientHandler
	User         *api.UserHandler
	GiftCard     *api.GiftCardHandler
	Organization *api.OrganizationHandler
	Accounting   *api.AccountingHandler
	Marketing    *api.MarketingHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Reservation:  p.Reservation,
		Client:       p.Client,
		User:         p.User,
		GiftCard:     p.GiftCard,
		Organization: p.Organization,
		Accounting:   p.Accounting,
		Marketing:    p.Marketing,
	}
}
