package stock

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/specs"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/validate"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type servicer interface {
	createStock(ctx context.Context, newStock *CreateStockRequest) (*Stock, error)
	getAllStock(ctx context.Context, search string, productID uuid.UUID) ([]*StockAndProductDTO, error)
	deleteStock(ctx context.Context, stockID uuid.UUID) error
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(stockService servicer, middleware middleware) *handler {
	return &handler{
		service:    stockService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/stock",
		handlerutils.MakeHandler(
			h.getAllStockHandler,
		),
	)

	// protected routes
	router.Post(
		"/stock",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.createStockHandler,
				"admin",
			),
		),
	)

	router.Delete(
		"/stock/{stockID}",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.deleteStockHandler,
				"admin",
			),
		),
	)
}

func (h *handler) createStockHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateStockRequest
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

	stock, err := h.service.createStock(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrProductNotFound):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrProductNotFound.Error(),
				nil,
			)

		case errors.Is(err, specs.ErrIncompleteSpecs):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				err.Error(),
				nil,
			)

		case errors.Is(err, ErrNonPositiveQuantity):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				ErrNonPositiveQuantity.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"stock created",
		stock,
	)
}

func (h *handler) getAllStockHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	queries := r.URL.Query()

	// optional exact product filter; ignore unparseable values
	productID := uuid.Nil
	if idStr := queries.Get("productID"); idStr != "" {
		if parsed, err := uuid.Parse(idStr); err == nil {
			productID = parsed
		}
	}

	stockItems, err := h.service.getAllStock(
		ctx,
		queries.Get("search"),
		productID,
	)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"all stock retrieved",
		GetAllStockResponse{
			StockCount: len(stockItems),
			Stock:      stockItems,
		},
	)
}

func (h *handler) deleteStockHandler(w http.ResponseWriter, r *http.Request) error {
	stockID, err := uuid.Parse(chi.URLParam(r, "stockID"))
	if err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			"invalid stock id",
			nil,
		)
	}

	if err := h.service.deleteStock(r.Context(), stockID); err != nil {
		if errors.Is(err, servererrors.ErrStockNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrStockNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"stock deleted",
		nil,
	)
}
