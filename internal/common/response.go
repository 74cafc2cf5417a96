package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"` // per-field validation detail
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondFromError maps a domain error to its HTTP status. Validation errors
// carry their field detail; internal errors are logged and surfaced
// generically so engine internals never reach the caller.
func RespondFromError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)

	var verr *ValidationError
	if errors.As(err, &verr) {
		RespondWithJSON(w, code, ErrorResponse{Error: ErrValidation.Error(), Errors: verr.Fields})
		return
	}

	if code == http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
		RespondWithError(w, code, ErrInternalServer.Error())
		return
	}

	RespondWithError(w, code, err.Error())
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
