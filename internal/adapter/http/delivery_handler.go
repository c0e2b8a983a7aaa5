package http

import (
	"net/http"
	"time"

	"agrimarket-backend/internal/domain/delivery"
	"agrimarket-backend/internal/domain/geo"
	deliveryUC "agrimarket-backend/internal/usecase/delivery"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DeliveryHandler struct {
	uc  *deliveryUC.Usecase
	log *zap.Logger
}

func NewDeliveryHandler(uc *deliveryUC.Usecase, log *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, log: log}
}

type startDeliveryReq struct {
	ContractID            string      `json:"contractId"            validate:"required"`
	FarmLocation          locationReq `json:"farmLocation"`
	BuyerLocation         locationReq `json:"buyerLocation"`
	EstimatedDeliveryTime *time.Time  `json:"estimatedDeliveryTime"`
}

func (h *DeliveryHandler) Start(c echo.Context) error {
	var req startDeliveryReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	d, err := h.uc.Start(c.Request().Context(), deliveryUC.StartInput{
		ContractID:    req.ContractID,
		FarmLocation:  req.FarmLocation.toGeo(),
		BuyerLocation: req.BuyerLocation.toGeo(),
		EstimatedTime: req.EstimatedDeliveryTime,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Delivery initiated", Data: d})
}

// updateLocationReq carries no coordinate bounds: pings are stored as sent.
type updateLocationReq struct {
	Lat                   float64    `json:"lat"`
	Lng                   float64    `json:"lng"`
	Status                string     `json:"status"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

func (h *DeliveryHandler) UpdateLocation(c echo.Context) error {
	var req updateLocationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	in := deliveryUC.LocationInput{
		DeliveryID:    c.Param("id"),
		Lat:           req.Lat,
		Lng:           req.Lng,
		EstimatedTime: req.EstimatedDeliveryTime,
	}
	if req.Status != "" {
		st, err := delivery.ParseStatus(req.Status)
		if err != nil {
			return writeError(c, h.log, err)
		}
		in.Status = &st
	}
	if err := h.uc.UpdateLocation(c.Request().Context(), in); err != nil {
		return writeError(c, h.log, err)
	}
	return respondMessage(c, http.StatusOK, "Location updated successfully")
}

func (h *DeliveryHandler) StatusByContract(c echo.Context) error {
	st, err := h.uc.StatusByContract(c.Request().Context(), c.Param("contractId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, st)
}

func (h *DeliveryHandler) Complete(c echo.Context) error {
	if err := h.uc.Complete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return respondMessage(c, http.StatusOK, "Delivery marked as complete.")
}

type etaReq struct {
	OriginLat float64 `query:"originLat" validate:"latitude"`
	OriginLng float64 `query:"originLng" validate:"longitude"`
	DestLat   float64 `query:"destLat"   validate:"latitude"`
	DestLng   float64 `query:"destLng"   validate:"longitude"`
}

func (h *DeliveryHandler) ETA(c echo.Context) error {
	var req etaReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	return respond(c, http.StatusOK, h.uc.ETA(
		geo.Location{Lat: req.OriginLat, Lng: req.OriginLng},
		geo.Location{Lat: req.DestLat, Lng: req.DestLng},
	))
}
