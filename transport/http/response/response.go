package response

import (
	"encoding/json"
	"net/http"

	"luxhome/shared/constant"
	"luxhome/shared/failure"
	"luxhome/shared/logger"
)

// Envelopes used by the JSON API. The tour payload and editor endpoints bypass them.
type (
	Data[T any] struct {
		Data *T `json:"data,omitempty"`
	}

	Error struct {
		Error *string `json:"error,omitempty"`
	}

	Message struct {
		Message *string `json:"message,omitempty"`
	}

	Detail struct {
		Detail string `json:"detail"`
	}
)

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

// WithJSON wraps payload in {"data": ...}.
func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithPayload writes payload as the whole body.
func WithPayload(w http.ResponseWriter, code int, payload any) {
	write(w, code, payload)
}

// WithError answers with the status carried by err, or 500.
func WithError(w http.ResponseWriter, err error) {
	msg := err.Error()

	write(w, failure.GetCode(err), Error{Error: &msg})
}

// WithDetail answers {"detail": ...}. Internal errors are reported by status text only.
func WithDetail(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	detail := err.Error()
	if code == http.StatusInternalServerError {
		detail = http.StatusText(code)
	}

	write(w, code, Detail{Detail: detail})
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err = w.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
