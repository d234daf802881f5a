package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/lendq/loan-intake/pkg/apperr"
)

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type ErrorResponse struct {
	Success    bool                    `json:"success"`
	Code       string                  `json:"code,omitempty"`
	Error      string                  `json:"error"`
	Violations []apperr.FieldViolation `json:"violations,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	response := Response{
		Success:   statusCode >= 200 && statusCode < 300,
		Data:      data,
		Timestamp: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// Success sends a successful JSON response
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Created sends a created JSON response
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// NoContent sends an empty 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends an error JSON response
func Error(w http.ResponseWriter, statusCode int, code, message string, violations []apperr.FieldViolation) {
	response := ErrorResponse{
		Success:    false,
		Code:       code,
		Error:      message,
		Violations: violations,
		Timestamp:  time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		log.Printf("Error encoding error response: %v", encodeErr)
	}
}

// AppError maps a typed application error onto an HTTP response. Unexpected
// failures are logged with their full detail; the response carries that
// detail only when exposeInternal is set (non-production environments).
func AppError(w http.ResponseWriter, err error, exposeInternal bool) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Unexpected(err)
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		Error(w, http.StatusBadRequest, appErr.Code, appErr.Message, appErr.Violations)
	case apperr.KindNotFound:
		Error(w, http.StatusNotFound, appErr.Code, appErr.Message, nil)
	case apperr.KindConflict:
		Error(w, http.StatusConflict, appErr.Code, appErr.Message, nil)
	case apperr.KindUnauthorized:
		Error(w, http.StatusUnauthorized, appErr.Code, appErr.Message, nil)
	case apperr.KindForbidden:
		Error(w, http.StatusForbidden, appErr.Code, appErr.Message, nil)
	default:
		log.Printf("unexpected error: %v", appErr)
		message := "internal error"
		if exposeInternal {
			message = appErr.Error()
		}
		Error(w, http.StatusInternalServerError, appErr.Code, message, nil)
	}
}

// CORSMiddleware adds CORS headers
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &responseRecorder{ResponseWriter: w, statusCode: 200}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, recorder.statusCode, duration)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}
