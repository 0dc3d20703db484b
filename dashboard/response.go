package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/skim"
)

// Response is the JSON envelope returned by every API endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// StatusCode maps an application error code to an HTTP status.
func StatusCode(err error) int {
	switch skim.ErrorCode(err) {
	case "":
		return http.StatusOK
	case skim.EINVALID:
		return http.StatusBadRequest
	case skim.ENOTFOUND:
		return http.StatusNotFound
	case skim.EFETCH:
		return http.StatusBadGateway
	case skim.EEXTRACT:
		return http.StatusUnprocessableEntity
	case skim.EGENERATE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// writeError writes err using the envelope. Internal errors are logged and
// their details hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	msg := skim.ErrorMessage(err)
	if code == http.StatusInternalServerError {
		msg = "Internal error"
		s.logger.Error("request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, code, Response{
		Status: "error",
		Error:  msg,
		Code:   skim.ErrorCode(err),
	})
}
