package http

import (
	"net/http"

	"agrimarket-backend/internal/domain/geo"
	insightUC "agrimarket-backend/internal/usecase/insight"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InsightHandler struct {
	uc  *insightUC.Usecase
	log *zap.Logger
}

func NewInsightHandler(uc *insightUC.Usecase, log *zap.Logger) *InsightHandler {
	return &InsightHandler{uc: uc, log: log}
}

type predictReq struct {
	ContractID string  `query:"contractId" validate:"required"`
	CropType   string  `query:"crop"       validate:"required"`
	BasePrice  float64 `query:"basePrice"  validate:"gte=0"`
}

func (h *InsightHandler) Predict(c echo.Context) error {
	var req predictReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Generate(c.Request().Context(), insightUC.GenerateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, dto)
}

type reportReq struct {
	CropType  string  `query:"crop"      validate:"required"`
	BasePrice float64 `query:"basePrice" validate:"gte=0"`
	Lat       float64 `query:"lat"       validate:"latitude"`
	Lng       float64 `query:"lng"       validate:"longitude"`
}

func (h *InsightHandler) Report(c echo.Context) error {
	var req reportReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	r := h.uc.Report(c.Request().Context(), caller(c), insightUC.ReportInput{
		CropType:  req.CropType,
		BasePrice: req.BasePrice,
		Location:  geo.Location{Lat: req.Lat, Lng: req.Lng},
	})
	return respond(c, http.StatusOK, r)
}

func (h *InsightHandler) History(c echo.Context) error {
	list, err := h.uc.History(c.Request().Context(), c.Param("contractId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondList(c, http.StatusOK, list)
}
