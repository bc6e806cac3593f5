package router

import (
	"jamat/internal/handlers/auth"
	"jamat/internal/handlers/contact"
	"jamat/internal/handlers/dashboard"
	"jamat/internal/handlers/group"
	"jamat/internal/handlers/mosque"
	"jamat/internal/handlers/visit"

	"github.com/go-chi/chi/v5"
)

const apiVersion = "/v1"

// mountable is implemented by every domain handler.
type mountable interface {
	Router(r chi.Router)
}

type DomainHandlers struct {
	Auth      auth.Handler
	Mosque    mosque.Handler
	Group     group.Handler
	Visit     visit.Handler
	Dashboard dashboard.Handler
	Contact   contact.Handler
}

func (d *DomainHandlers) all() []mountable {
	return []mountable{&d.Auth, &d.Mosque, &d.Group, &d.Visit, &d.Dashboard, &d.Contact}
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{DomainHandlers: domainHandlers}
}

// SetupRoutes mounts every domain under the versioned prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiVersion, func(versioned chi.Router) {
		for _, handler := range r.DomainHandlers.all() {
			handler.Router(versioned)
		}
	})
}
