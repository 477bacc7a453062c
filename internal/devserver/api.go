package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("write json failed")
	}
}

func success(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, RequestID: requestID(r)})
}

func created(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data, RequestID: requestID(r)})
}

func fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, envelope{
		Success:   false,
		Error:     &apiError{Code: code, Message: message},
		RequestID: requestID(r),
	})
}

func decode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
