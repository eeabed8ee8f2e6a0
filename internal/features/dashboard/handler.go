package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/go-chi/chi"
)

type servicer interface {
	getDashboard(ctx context.Context) (*GetDashboardResponse, error)
}

type handler struct {
	service servicer
}

func NewHandler(dashboardService servicer) *handler {
	return &handler{
		service: dashboardService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/dashboard",
		handlerutils.MakeHandler(
			h.getDashboardHandler,
		),
	)
}

func (h *handler) getDashboardHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	dashboard, err := h.service.getDashboard(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"dashboard retrieved",
		dashboard,
	)
}
