package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// decodeAndValidate decodes the JSON body into req and runs tag validation.
// It writes the error response itself and reports whether the handler should go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgInvalidRequestError,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// userIDParam reads the {userID} path parameter
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, URLParamUserID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
		return 0, false
	}
	return id, true
}
