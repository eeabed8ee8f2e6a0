package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/session"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/handlerutils"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/middlewares"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/validate"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type servicer interface {
	signIn(ctx context.Context, payload *SignInRequest) (*User, *session.TokenPair, error)
	signOut(ctx context.Context, refreshToken string) error
	refresh(ctx context.Context, refreshToken string) (*session.TokenPair, error)
	getUser(ctx context.Context, userID uuid.UUID) (*User, error)
}

type middleware interface {
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware

	// cookie lifetimes, mirroring the token expiries
	accessTokenMaxAge  int
	refreshTokenMaxAge int
}

func NewHandler(userService servicer, middleware middleware, accessTokenMaxAge, refreshTokenMaxAge int) *handler {
	return &handler{
		service:            userService,
		middleware:         middleware,
		accessTokenMaxAge:  accessTokenMaxAge,
		refreshTokenMaxAge: refreshTokenMaxAge,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/auth/sign-in",
		handlerutils.MakeHandler(
			h.signInHandler,
		),
	)

	router.Post(
		"/auth/sign-out",
		handlerutils.MakeHandler(
			h.signOutHandler,
		),
	)

	router.Post(
		"/auth/refresh",
		handlerutils.MakeHandler(
			h.refreshHandler,
		),
	)

	// protected routes
	router.Get(
		"/auth/session",
		handlerutils.MakeHandler(
			h.middleware.AuthWithContext(
				h.getSessionHandler,
				"admin",
			),
		),
	)
}

func (h *handler) signInHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *SignInRequest
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

	user, tokens, err := h.service.signIn(ctx, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrInvalidCredentials) {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrInvalidCredentials.Error(),
				nil,
			)
		}

		return err
	}

	h.setTokenCookies(w, tokens)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"signed in",
		user,
	)
}

func (h *handler) signOutHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	refreshToken, err := r.Cookie("refreshToken")
	if err == nil {
		if err := h.service.signOut(ctx, refreshToken.Value); err != nil {
			return err
		}
	}

	clearTokenCookies(w)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"signed out",
		nil,
	)
}

func (h *handler) refreshHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	refreshToken, err := r.Cookie("refreshToken")
	if err != nil {
		return servererrors.New(
			http.StatusUnauthorized,
			servererrors.ErrSessionNotFound.Error(),
			nil,
		)
	}

	tokens, err := h.service.refresh(ctx, refreshToken.Value)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrSessionNotFound),
			errors.Is(err, servererrors.ErrUnauthorized):
			clearTokenCookies(w)
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrSessionNotFound.Error(),
				nil,
			)

		default:
			return err
		}
	}

	h.setTokenCookies(w, tokens)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"session refreshed",
		nil,
	)
}

func (h *handler) getSessionHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	userID := middlewares.GetEntityIDFromContextKey(ctx)

	user, err := h.service.getUser(ctx, userID)
	if err != nil {
		if errors.Is(err, servererrors.ErrUserNotFound) {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorized.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"session retrieved",
		user,
	)
}

func (h *handler) setTokenCookies(w http.ResponseWriter, tokens *session.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   h.accessTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		Path:     "/",
		MaxAge:   h.refreshTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
