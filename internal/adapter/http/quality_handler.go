package http

import (
	"net/http"

	qualityUC "agrimarket-backend/internal/usecase/quality"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type QualityHandler struct {
	uc  *qualityUC.Usecase
	log *zap.Logger
}

func NewQualityHandler(uc *qualityUC.Usecase, log *zap.Logger) *QualityHandler {
	return &QualityHandler{uc: uc, log: log}
}

type submitCheckReq struct {
	ContractID   string            `json:"contractId"   validate:"required"`
	QualityScore float64           `json:"qualityScore" validate:"gte=0,lte=100"`
	Grade        string            `json:"grade"        validate:"required"`
	Remarks      string            `json:"remarks"`
	Parameters   map[string]string `json:"parameters"`
	VerifiedBy   string            `json:"verifiedBy"`
}

func (h *QualityHandler) Submit(c echo.Context) error {
	var req submitCheckReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	qc, err := h.uc.Submit(c.Request().Context(), qualityUC.SubmitInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Quality report submitted", Data: qc})
}
