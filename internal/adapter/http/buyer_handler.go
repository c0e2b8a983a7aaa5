package http

import (
	"net/http"

	buyerUC "agrimarket-backend/internal/usecase/buyer"
	contractUC "agrimarket-backend/internal/usecase/contract"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BuyerHandler struct {
	buyers    *buyerUC.Usecase
	contracts *contractUC.Usecase
	log       *zap.Logger
}

func NewBuyerHandler(buyers *buyerUC.Usecase, contracts *contractUC.Usecase, log *zap.Logger) *BuyerHandler {
	return &BuyerHandler{buyers: buyers, contracts: contracts, log: log}
}

type buyerProfileReq struct {
	CompanyName        string `json:"companyName"        validate:"required"`
	BusinessType       string `json:"businessType"`
	RegistrationNumber string `json:"registrationNumber"`
}

func (h *BuyerHandler) CreateProfile(c echo.Context) error {
	var req buyerProfileReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	b, err := h.buyers.CreateProfile(c.Request().Context(), caller(c), buyerUC.ProfileInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Buyer profile created", Data: b})
}

func (h *BuyerHandler) Marketplace(c echo.Context) error {
	list, err := h.contracts.Marketplace(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondList(c, http.StatusOK, list)
}

func (h *BuyerHandler) Accept(c echo.Context) error {
	ct, err := h.contracts.Accept(c.Request().Context(), caller(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Contract accepted successfully. Proceed to payment.", Data: ct})
}

func (h *BuyerHandler) Dashboard(c echo.Context) error {
	d, err := h.buyers.Dashboard(c.Request().Context(), caller(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, d)
}
