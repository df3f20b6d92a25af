package utils

import (
	"encoding/json"
	"net/http"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes the error as JSON with the status mapped from its kind:
// validation 400, not found 404, conflict 409, anything else 500.
func Error(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	JSON(w, status, map[string]string{"error": message})
}
