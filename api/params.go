package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saadtahsin/portfolio-backend/errs"
)

// parseIDParam reads a positive integer id from a chi URL parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
