package http

import (
	"net/http"
	"strconv"

	adminUC "agrimarket-backend/internal/usecase/admin"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AdminHandler struct {
	uc  *adminUC.Usecase
	log *zap.Logger
}

func NewAdminHandler(uc *adminUC.Usecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

type verifyUserReq struct {
	UserID string `json:"userId" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

func (h *AdminHandler) VerifyUser(c echo.Context) error {
	var req verifyUserReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	verified, err := h.uc.VerifyUser(c.Request().Context(), caller(c), req.UserID, req.Action)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if verified {
		return respondMessage(c, http.StatusOK, "User verified successfully. They can now trade.")
	}
	return respondMessage(c, http.StatusOK, "User verification rejected. Access restricted.")
}

// moderateReq leaves action unchecked so an unknown action reaches the
// usecase and comes back as 400.
type moderateReq struct {
	ContractID string `json:"contractId" validate:"required"`
	Action     string `json:"action"     validate:"required"`
	Reason     string `json:"reason"`
}

func (h *AdminHandler) ModerateContract(c echo.Context) error {
	var req moderateReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	ct, err := h.uc.ModerateContract(c.Request().Context(), caller(c), req.ContractID, req.Action, req.Reason)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Contract marked as " + string(ct.Status), Data: ct})
}

type verifyQualityReq struct {
	QualityID string `json:"qualityId" validate:"required"`
	Decision  string `json:"decision"  validate:"required"`
	Remarks   string `json:"remarks"`
}

func (h *AdminHandler) VerifyQuality(c echo.Context) error {
	var req verifyQualityReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	st, err := h.uc.VerifyQuality(c.Request().Context(), caller(c), req.QualityID, req.Decision, req.Remarks)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondMessage(c, http.StatusOK, "Quality Report finalized as "+st)
}

func (h *AdminHandler) Analytics(c echo.Context) error {
	a, err := h.uc.Analytics(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, a)
}

func (h *AdminHandler) AuditLog(c echo.Context) error {
	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = min(n, maxAuditLimit)
	}
	entries, err := h.uc.AuditLog(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondList(c, http.StatusOK, entries)
}
