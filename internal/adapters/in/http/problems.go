package http

import (
	"errors"
	"net/http"

	"brewery/internal/pkg/errs"
)

// Problem is an RFC 7807 problem detail body. Every error response of the API
// uses this shape.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func newProblem(status int, title, detail string) Problem {
	return Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// problemFromError translates the error taxonomy into HTTP problem details:
// invalid-argument classes map to 400, not-found to 404, already-exists and
// version conflicts to 409, everything else (precondition violations
// included) to 500.
func problemFromError(err error) (int, Problem) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, newProblem(http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, newProblem(http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, newProblem(http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict, newProblem(http.StatusConflict, "Conflict", err.Error())
	default:
		return http.StatusInternalServerError,
			newProblem(http.StatusInternalServerError, "Internal Server Error", "")
	}
}
