package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lendq/loan-intake/pkg/apperr"
)

// parsePathID reads a UUID path variable. A malformed id is a validation
// failure; only a well-formed id that matches no row becomes a not-found.
func parsePathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation(apperr.FieldViolation{Field: name, Message: "must be a valid UUID"})
	}
	return id, nil
}

// parsePageParams reads optional page/pageSize query parameters. Absent
// values stay zero and fall back to defaults during normalization;
// non-numeric values are validation failures, reported together.
func parsePageParams(r *http.Request) (int, int, error) {
	var violations []apperr.FieldViolation
	var page, pageSize int

	query := r.URL.Query()
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, apperr.FieldViolation{Field: "page", Message: "must be an integer"})
		} else {
			page = n
		}
	}
	if raw := query.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, apperr.FieldViolation{Field: "pageSize", Message: "must be an integer"})
		} else {
			pageSize = n
		}
	}

	if len(violations) > 0 {
		return 0, 0, apperr.Validation(violations...)
	}
	return page, pageSize, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(apperr.FieldViolation{Field: "body", Message: "must be valid JSON"})
	}
	return nil
}
