package http

import (
	"net/http"

	farmerUC "agrimarket-backend/internal/usecase/farmer"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type FarmerHandler struct {
	uc  *farmerUC.Usecase
	log *zap.Logger
}

func NewFarmerHandler(uc *farmerUC.Usecase, log *zap.Logger) *FarmerHandler {
	return &FarmerHandler{uc: uc, log: log}
}

type farmerProfileReq struct {
	FarmLocation locationReq `json:"farmLocation"`
	CropsGrown   []string    `json:"cropsGrown"`
	LandSize     float64     `json:"landSize"     validate:"gte=0"`
}

func (h *FarmerHandler) CreateProfile(c echo.Context) error {
	var req farmerProfileReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	f, err := h.uc.CreateProfile(c.Request().Context(), caller(c), farmerUC.ProfileInput{
		FarmLocation: req.FarmLocation.toGeo(),
		CropsGrown:   req.CropsGrown,
		LandSize:     req.LandSize,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Farmer profile created", Data: f})
}

func (h *FarmerHandler) Dashboard(c echo.Context) error {
	d, err := h.uc.Dashboard(c.Request().Context(), caller(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, d)
}

func (h *FarmerHandler) Contracts(c echo.Context) error {
	list, err := h.uc.Contracts(c.Request().Context(), caller(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondList(c, http.StatusOK, list)
}

type addCropReq struct {
	CropName            string `json:"cropName"            validate:"required"`
	ContractID          string `json:"contractId"`
	SowingDate          string `json:"sowingDate"          validate:"omitempty,datetime=2006-01-02"`
	ExpectedHarvestDate string `json:"expectedHarvestDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *FarmerHandler) AddCrop(c echo.Context) error {
	var req addCropReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	crop, err := h.uc.AddCrop(c.Request().Context(), caller(c), farmerUC.CropInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Crop added", Data: crop})
}

type cropStatusReq struct {
	Status string `json:"status" validate:"required,crop_status"`
}

func (h *FarmerHandler) UpdateCropStatus(c echo.Context) error {
	var req cropStatusReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	st, err := h.uc.UpdateCropStatus(c.Request().Context(), caller(c), c.Param("cropId"), req.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondMessage(c, http.StatusOK, "Crop status updated to "+string(st))
}

type demandReq struct {
	Crop string `query:"crop" validate:"required"`
}

func (h *FarmerHandler) Demand(c echo.Context) error {
	var req demandReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	return respond(c, http.StatusOK, h.uc.Demand(req.Crop))
}
