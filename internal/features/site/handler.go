package site

import (
	"errors"
	"net/http"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/go-chi/chi"
)

type servicer interface {
	getProjects(category ProjectCategory) []*Project
	getProject(projectID string) (*Project, error)
	getServices() []*OfferedService
	getTeam() []*TeamMember
	getTestimonials() []*Testimonial
}

type handler struct {
	service servicer
}

func NewHandler(siteService servicer) *handler {
	return &handler{
		service: siteService,
	}
}

// RegisterRoutes mounts the public marketing endpoints. None of them
// are gated; they serve the same content to every visitor.
func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/site/projects",
		handlerutils.MakeHandler(
			h.getProjectsHandler,
		),
	)

	router.Get(
		"/site/projects/{projectID}",
		handlerutils.MakeHandler(
			h.getProjectHandler,
		),
	)

	router.Get(
		"/site/services",
		handlerutils.MakeHandler(
			h.getServicesHandler,
		),
	)

	router.Get(
		"/site/team",
		handlerutils.MakeHandler(
			h.getTeamHandler,
		),
	)

	router.Get(
		"/site/testimonials",
		handlerutils.MakeHandler(
			h.getTestimonialsHandler,
		),
	)
}

func (h *handler) getProjectsHandler(w http.ResponseWriter, r *http.Request) error {
	category := ProjectCategory(r.URL.Query().Get("category"))
	if category != "" && !category.IsValid() {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrURLQueryParams.Error(),
			nil,
		)
	}

	projects := h.service.getProjects(category)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"projects retrieved",
		projects,
	)
}

func (h *handler) getProjectHandler(w http.ResponseWriter, r *http.Request) error {
	project, err := h.service.getProject(chi.URLParam(r, "projectID"))
	if err != nil {
		if errors.Is(err, servererrors.ErrProjectNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrProjectNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"project found",
		project,
	)
}

func (h *handler) getServicesHandler(w http.ResponseWriter, r *http.Request) error {
	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"services retrieved",
		h.service.getServices(),
	)
}

func (h *handler) getTeamHandler(w http.ResponseWriter, r *http.Request) error {
	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"team retrieved",
		h.service.getTeam(),
	)
}

func (h *handler) getTestimonialsHandler(w http.ResponseWriter, r *http.Request) error {
	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"testimonials retrieved",
		h.service.getTestimonials(),
	)
}
