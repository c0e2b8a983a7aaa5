package http

import (
	"net/http"

	paymentUC "agrimarket-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	uc  *paymentUC.Usecase
	log *zap.Logger
}

func NewPaymentHandler(uc *paymentUC.Usecase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

type createOrderReq struct {
	ContractID string  `json:"contractId" validate:"required"`
	Amount     float64 `json:"amount"     validate:"gt=0,dec2"`
}

// orderResponse puts the order fields at the top level, where the checkout widget reads them.
type orderResponse struct {
	Success bool `json:"success"`
	*paymentUC.OrderDTO
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	order, err := h.uc.CreateOrder(c.Request().Context(), paymentUC.CreateOrderInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, orderResponse{Success: true, OrderDTO: order})
}

// verifyReq uses the checkout widget's field names.
type verifyReq struct {
	OrderID    string `json:"razorpay_order_id"   validate:"required"`
	PaymentID  string `json:"razorpay_payment_id" validate:"required"`
	Signature  string `json:"razorpay_signature"  validate:"required"`
	ContractID string `json:"contractId"          validate:"required"`
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	res, err := h.uc.Verify(c.Request().Context(), caller(c), paymentUC.VerifyInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: res.Success, Message: res.Message})
}
