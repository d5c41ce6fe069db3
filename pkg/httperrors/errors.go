package httperrors

import (
	"encoding/json"
	"net/http"

	"github.com/rejdeboer/tagpro-telemetry/internal/logger"
)

var log = logger.Get()

// Codes let clients tell apart failures that share a status.
const (
	CodeInvalidMatch   = "invalid_match"
	CodeMatchTooLarge  = "match_too_large"
	CodeMatchNotFound  = "match_not_found"
	CodeInvalidMatchID = "invalid_match_id"
)

type Response struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
}

func InternalServerError(w http.ResponseWriter) {
	Write(w, "an unexpected error occurred, please try again later", http.StatusInternalServerError)
}

func Write(w http.ResponseWriter, message string, code int) {
	write(w, Response{Message: message, Status: code})
}

// WriteCode writes an error response carrying one of the error codes.
func WriteCode(w http.ResponseWriter, message string, status int, code string) {
	write(w, Response{Message: message, Status: status, Code: code})
}

func write(w http.ResponseWriter, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(body.Status)

	response, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("error marshalling error response")
		return
	}

	w.Write(response)
}
