package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ErrorResource is the object returned in an error case
type ErrorResource struct {
	Error string `json:"error"`
}

// NewErrorResponse - convenience function for creating an error response
// resource
func NewErrorResponse(message string) *ErrorResource {
	return &ErrorResource{Error: message}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}
