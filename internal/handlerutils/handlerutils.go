package handlerutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
)

// APIHandler is an http handler that returns an error instead of writing
// error responses itself, so error handling stays in one place.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an [APIHandler] into a [http.HandlerFunc] with
// centralized error handling and logging.
func MakeHandler(h APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		log.Println(err)

		var serverError *servererrors.ServerError
		if errors.As(err, &serverError) {
			WriteErrorJSON(
				w,
				serverError.StatusCode,
				serverError.Error(),
				serverError.Errors,
			)
			return
		}

		WriteErrorJSON(
			w,
			http.StatusInternalServerError,
			"something went wrong",
			nil,
		)
	}
}

type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func ParseJSON(r *http.Request, payload any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}

	return json.NewDecoder(r.Body).Decode(payload)
}

func WriteSuccessJSON(w http.ResponseWriter, statusCode int, message string, data any) error {
	return writeJSON(
		w,
		statusCode,
		&successResponse{
			Status:  "success",
			Message: message,
			Data:    data,
		},
	)
}

func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string, errs any) error {
	return writeJSON(
		w,
		statusCode,
		&errorResponse{
			Status:  "error",
			Message: message,
			Errors:  errs,
		},
	)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(payload)
}

// LenientInt decodes from a json number or a numeric string. Anything that
// does not parse becomes 0 so bad quantity input fails validation instead of
// failing the whole payload decode.
type LenientInt int

func (l *LenientInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = 0
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*l = LenientInt(v)

	case string:
		num, err := strconv.Atoi(v)
		if err != nil {
			*l = 0
			return nil
		}
		*l = LenientInt(num)

	default:
		*l = 0
	}

	return nil
}
