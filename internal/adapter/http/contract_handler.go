package http

import (
	"encoding/json"
	"net/http"

	"agrimarket-backend/internal/domain/contract"
	contractUC "agrimarket-backend/internal/usecase/contract"
	"agrimarket-backend/internal/usecase/pricing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ContractHandler struct {
	uc  *contractUC.Usecase
	log *zap.Logger
}

func NewContractHandler(uc *contractUC.Usecase, log *zap.Logger) *ContractHandler {
	return &ContractHandler{uc: uc, log: log}
}

type createContractReq struct {
	CropType        string  `json:"cropType"        validate:"required"`
	Quantity        float64 `json:"quantity"        validate:"gt=0"`
	LockedPrice     float64 `json:"price"           validate:"gt=0,dec2"`
	QualityStandard string  `json:"qualityStandard"`
	DeliveryDate    string  `json:"deliveryDate"    validate:"omitempty,datetime=2006-01-02"`
}

// UnmarshalJSON still accepts the older "lockedPrice" key; "price" wins when both are sent.
func (r *createContractReq) UnmarshalJSON(b []byte) error {
	type plain createContractReq
	var aux struct {
		plain
		Legacy *float64 `json:"lockedPrice"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = createContractReq(aux.plain)
	if r.LockedPrice == 0 && aux.Legacy != nil {
		r.LockedPrice = *aux.Legacy
	}
	return nil
}

func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	ct, err := h.uc.Create(c.Request().Context(), caller(c), contractUC.CreateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "Contract created successfully", Data: ct})
}

func (h *ContractHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), caller(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respondList(c, http.StatusOK, list)
}

func (h *ContractHandler) Get(c echo.Context) error {
	ct, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, ct)
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus is the admin route. Unknown status names surface as 422 from
// the usecase, illegal moves as 409.
func (h *ContractHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	ct, err := h.uc.UpdateStatus(c.Request().Context(), caller(c), c.Param("id"), contract.Status(req.Status))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Contract status updated to " + string(ct.Status), Data: ct})
}

type suggestReq struct {
	Crop     string  `query:"crop"     validate:"required"`
	Quantity float64 `query:"quantity" validate:"gt=0"`
}

func (h *ContractHandler) SuggestPrice(c echo.Context) error {
	var req suggestReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	return respond(c, http.StatusOK, pricing.SuggestedPrice(req.Crop, req.Quantity))
}

type validatePriceReq struct {
	Crop          string  `json:"crop"          validate:"required"`
	ProposedPrice float64 `json:"proposedPrice" validate:"gt=0"`
}

func (h *ContractHandler) ValidatePrice(c echo.Context) error {
	var req validatePriceReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	return respond(c, http.StatusOK, pricing.ValidatePriceRange(req.Crop, req.ProposedPrice))
}

type lockPriceReq struct {
	AgreedPrice float64 `json:"agreedPrice" validate:"gt=0,dec2"`
}

func (h *ContractHandler) LockPrice(c echo.Context) error {
	var req lockPriceReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	lock, err := h.uc.LockPrice(c.Request().Context(), contractUC.LockPriceInput{
		ContractID:  c.Param("id"),
		AgreedPrice: req.AgreedPrice,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, lock)
}
