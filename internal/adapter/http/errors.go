package http

import (
	"errors"
	"net/http"

	"agrimarket-backend/internal/domain/buyer"
	"agrimarket-backend/internal/domain/contract"
	"agrimarket-backend/internal/domain/delivery"
	"agrimarket-backend/internal/domain/farmer"
	"agrimarket-backend/internal/domain/insight"
	"agrimarket-backend/internal/domain/payment"
	"agrimarket-backend/internal/domain/quality"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/usecase/admin"
	"agrimarket-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const genericError = "Server Error"

var (
	notFound = []error{
		contract.ErrNotFound, payment.ErrNotFound, delivery.ErrNotFound,
		quality.ErrNotFound, insight.ErrNotFound, user.ErrNotFound,
		farmer.ErrNotFound, farmer.ErrCropNotFound, buyer.ErrNotFound,
		auth.ErrMockLoginDisabled,
	}
	conflict = []error{
		contract.ErrInvalidTransition, contract.ErrAlreadyAccepted,
		user.ErrEmailTaken, farmer.ErrProfileExists, buyer.ErrProfileExists,
	}
	unprocessable = []error{
		contract.ErrInvalidStatus, delivery.ErrInvalidStatus,
		farmer.ErrInvalidCropStatus, quality.ErrInvalidDecision,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeError maps domain errors to status codes. Anything unrecognised is a
// 500 with a generic body; the real error only goes to the log.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case isAny(err, notFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case isAny(err, conflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case isAny(err, unprocessable):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, admin.ErrInvalidAction), errors.Is(err, payment.ErrContractMismatch):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, payment.ErrInvalidSignature):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Security Error: Invalid Signature"})
	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, user.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authorized, token failed"})
	case errors.Is(err, insight.ErrUnavailable):
		log.Warn("prediction source unavailable", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "AI Service Unavailable"})
	case errors.Is(err, payment.ErrGateway):
		log.Error("payment gateway failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initiate payment gateway."})
	}
	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: genericError})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// bindValid binds then validates req, writing the 400/422 itself. ok is false
// when a response has already been written.
func bindValid(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, badBody(c)
	}
	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}
