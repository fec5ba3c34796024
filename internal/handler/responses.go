package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/SlotsBot_Go/internal/cooldown"
	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/slots"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Reason is set for spin
// rejections so bots can branch on it without parsing the message.
type ErrorResponse struct {
	Error             string            `json:"error"`
	Reason            string            `json:"reason,omitempty"`
	RetryAfterSeconds int64             `json:"retry_after_seconds,omitempty"`
	Fields            map[string]string `json:"fields,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its status, message and
// rejection reason
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	resp := ErrorResponse{
		Error:  message,
		Reason: domain.RejectionReason(err),
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		secs := int64(math.Ceil(cd.Remaining.Seconds()))
		resp.RetryAfterSeconds = secs
		w.Header().Set(HeaderRetryAfter, strconv.FormatInt(secs, 10))
	}

	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrAlreadySpinning):
		return http.StatusConflict, ErrMsgAlreadySpinningError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCreditsError
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrInvalidDefaultBet):
		return http.StatusBadRequest, ErrMsgInvalidDefaultBetError
	case errors.Is(err, domain.ErrInvalidAdjustment):
		return http.StatusBadRequest, ErrMsgInvalidAdjustmentError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrSettlementFailed):
		return http.StatusInternalServerError, ErrMsgSettlementFailedError
	case errors.Is(err, slots.ErrShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
