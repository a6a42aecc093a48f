package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeInvalidInput,
		perrors.ErrCodeInvalidPageSize,
		perrors.ErrCodeInvalidFormat,
		perrors.ErrCodeInvalidStyle,
		perrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case perrors.ErrCodeNotFound:
		return http.StatusNotFound
	case perrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case perrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case perrors.ErrCodeNetwork, perrors.ErrCodeStyleGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
