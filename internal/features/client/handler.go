package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/validate"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type servicer interface {
	createClient(ctx context.Context, newClient *CreateClientRequest) (*Client, error)
	getAllClients(ctx context.Context, search string) ([]*Client, error)
	deleteClient(ctx context.Context, clientID uuid.UUID) error
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(clientService servicer, middleware middleware) *handler {
	return &handler{
		service:    clientService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/clients",
		handlerutils.MakeHandler(
			h.getAllClientsHandler,
		),
	)

	// protected routes
	router.Post(
		"/clients",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createClientHandler,
				"admin",
			),
		),
	)

	router.Delete(
		"/clients/{clientID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.deleteClientHandler,
				"admin",
			),
		),
	)
}

func (h *handler) createClientHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateClientRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	client, err := h.service.createClient(ctx, payload)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"client created",
		client,
	)
}

func (h *handler) getAllClientsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	clients, err := h.service.getAllClients(
		ctx,
		r.URL.Query().Get("search"),
	)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"all clients retrieved",
		GetAllClientsResponse{
			ClientsCount: len(clients),
			Clients:      clients,
		},
	)
}

func (h *handler) deleteClientHandler(w http.ResponseWriter, r *http.Request) error {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			"invalid client id",
			nil,
		)
	}

	if err := h.service.deleteClient(r.Context(), clientID); err != nil {
		if errors.Is(err, servererrors.ErrClientNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrClientNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"client deleted",
		nil,
	)
}
