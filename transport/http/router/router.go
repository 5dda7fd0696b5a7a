package router

import (
	"luxhome/internal/handlers/apartment"
	"luxhome/internal/handlers/auth"
	"luxhome/internal/handlers/connection"
	"luxhome/internal/handlers/editor"
	"luxhome/internal/handlers/hotspot"
	"luxhome/internal/handlers/room"
	"luxhome/internal/handlers/tour"
	"luxhome/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Apartment  apartment.Handler
	Tour       tour.Handler
	Room       room.Handler
	Connection connection.Handler
	Hotspot    hotspot.Handler
	Editor     editor.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)

		routerGroup.Route("/apartments", func(apartments chi.Router) {
			r.DomainHandlers.Apartment.Router(apartments)
			r.DomainHandlers.Tour.Router(apartments)
		})

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Connection.Router(routerGroup)
		r.DomainHandlers.Hotspot.Router(routerGroup)
		r.DomainHandlers.Editor.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
