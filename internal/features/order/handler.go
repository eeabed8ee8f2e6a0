package order

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
	createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error)
	getAllOrders(ctx context.Context, search, status string) ([]*OrderAndClientDTO, error)
	getOrder(ctx context.Context, orderID uuid.UUID) (*OrderWithItemsDTO, error)
	deleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(orderService servicer, middleware middleware) *handler {
	return &handler{
		service:    orderService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/orders",
		handlerutils.MakeHandler(
			h.getAllOrdersHandler,
		),
	)

	router.Get(
		"/orders/{orderID}",
		handlerutils.MakeHandler(
			h.getOrderHandler,
		),
	)

	// protected routes
	router.Post(
		"/orders",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createOrderHandler,
				"admin",
			),
		),
	)

	router.Delete(
		"/orders/{orderID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.deleteOrderHandler,
				"admin",
			),
		),
	)
}

func (h *handler) createOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateOrderRequest
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

	order, err := h.service.createOrder(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrClientNotFound):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrClientNotFound.Error(),
				nil,
			)

		case errors.Is(err, ErrNoOrderItems):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				ErrNoOrderItems.Error(),
				nil,
			)

		case errors.Is(err, ErrInvalidOrderItems):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				ErrInvalidOrderItems.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"order created",
		order,
	)
}

func (h *handler) getAllOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	queries := r.URL.Query()

	orders, err := h.service.getAllOrders(
		ctx,
		queries.Get("search"),
		queries.Get("status"),
	)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"all orders retrieved",
		GetAllOrdersResponse{
			OrdersCount: len(orders),
			Orders:      orders,
		},
	)
}

func (h *handler) getOrderHandler(w http.ResponseWriter, r *http.Request) error {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			"invalid order id",
			nil,
		)
	}

	order, err := h.service.getOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, servererrors.ErrOrderNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrOrderNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"order found",
		order,
	)
}

func (h *handler) deleteOrderHandler(w http.ResponseWriter, r *http.Request) error {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			"invalid order id",
			nil,
		)
	}

	if err := h.service.deleteOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, servererrors.ErrOrderNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrOrderNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"order deleted",
		nil,
	)
}
