package alerts

import (
	"net/http"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/go-chi/chi"
)

type servicer interface {
	getAllAlerts() []*Alert
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(alertsService servicer, middleware middleware) *handler {
	return &handler{
		service:    alertsService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	// protected routes
	router.Get(
		"/alerts",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.getAllAlertsHandler,
				"admin",
			),
		),
	)
}

func (h *handler) getAllAlertsHandler(w http.ResponseWriter, r *http.Request) error {
	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"alerts retrieved",
		h.service.getAllAlerts(),
	)
}
