package http

import (
	"net/http"

	"agrimarket-backend/internal/domain/geo"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc  *auth.Usecase
	log *zap.Logger
}

func NewAuthHandler(uc *auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

type locationReq struct {
	Lat     float64 `json:"lat"     validate:"latitude"`
	Lng     float64 `json:"lng"     validate:"longitude"`
	Address string  `json:"address"`
}

func (l locationReq) toGeo() geo.Location {
	return geo.Location{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

type registerReq struct {
	Name         string       `json:"name"         validate:"required"`
	Email        string       `json:"email"        validate:"required,email"`
	Password     string       `json:"password"     validate:"required,min=6"`
	Role         string       `json:"role"         validate:"required,role"`
	Phone        string       `json:"phone"`
	Location     *locationReq `json:"location"`
	CompanyName  string       `json:"companyName"`
	BusinessType string       `json:"businessType"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	in := auth.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         user.Role(req.Role),
		Phone:        req.Phone,
		CompanyName:  req.CompanyName,
		BusinessType: req.BusinessType,
	}
	if req.Location != nil {
		loc := req.Location.toGeo()
		in.Location = &loc
	}
	dto, err := h.uc.Register(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: "User registered successfully", Data: dto})
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	sess, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Login Successful", Data: sess})
}

type mockLoginReq struct {
	Email string `json:"email" validate:"required,email"`
}

// MockLogin issues a token for an existing email without a password. Demo only.
func (h *AuthHandler) MockLogin(c echo.Context) error {
	if !h.uc.MockLoginEnabled() {
		return writeError(c, h.log, auth.ErrMockLoginDisabled)
	}
	var req mockLoginReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	sess, err := h.uc.MockLogin(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Login Successful", Data: sess})
}

func (h *AuthHandler) Me(c echo.Context) error {
	u, err := h.uc.Me(c.Request().Context(), caller(c).UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, u)
}
