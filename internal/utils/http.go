package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/myantech/erp-api/models"
)

// WriteJSON serializes data and writes it with the given status code and an
// "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error. The returned int is the number of body bytes
// written.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "Driver added", ID: 3}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// DecodeJSON reads a single JSON document from body into dst.
// An empty body is reported as io.EOF wrapped in the returned error.
func DecodeJSON(body io.Reader, dst any) error {
	if body == nil {
		return fmt.Errorf("error decoding JSON body: %w", io.EOF)
	}

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
