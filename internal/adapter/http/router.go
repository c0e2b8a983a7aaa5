package http

import (
	"net/http"
	"time"

	"agrimarket-backend/internal/adapter/middleware"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/internal/infrastructure/metrics"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Router holds everything the route table needs.
type Router struct {
	Tokens   user.TokenService
	Redis    *redis.Client
	IdempTTL time.Duration
	Metrics  *metrics.Metrics
	Log      *zap.Logger

	Health   *Handler
	Auth     *AuthHandler
	Contract *ContractHandler
	Buyer    *BuyerHandler
	Farmer   *FarmerHandler
	Payment  *PaymentHandler
	Admin    *AdminHandler
	Quality  *QualityHandler
	Insight  *InsightHandler
	Delivery *DeliveryHandler
}

// NewEcho builds the server with global middleware and every route.
func (r *Router) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		middleware.RequestLogger(r.Log),
		middleware.Metrics(r.Metrics),
		echomw.CORS(),
	)
	r.Register(e)
	return e
}

func (r *Router) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics.Handler()))
	}

	api := e.Group("/api")

	pub := api.Group("/auth")
	pub.POST("/register", r.Auth.Register)
	pub.POST("/login", r.Auth.Login)
	pub.POST("/mock-login", r.Auth.MockLogin)

	priv := api.Group("", middleware.Auth(r.Tokens))
	idem := middleware.Idempotency(r.Redis, r.IdempTTL, r.Log)
	only := middleware.RequireRoles
	admin := only(user.RoleAdmin)

	priv.GET("/auth/me", r.Auth.Me)

	ct := priv.Group("/contracts")
	ct.POST("", r.Contract.Create)
	ct.GET("", r.Contract.List)
	ct.GET("/pricing/suggest", r.Contract.SuggestPrice)
	ct.POST("/pricing/validate", r.Contract.ValidatePrice)
	ct.GET("/:id", r.Contract.Get)
	ct.PUT("/:id/status", r.Contract.UpdateStatus, admin)
	ct.POST("/:id/lock-price", r.Contract.LockPrice)

	by := priv.Group("/buyer", only(user.RoleBuyer))
	by.POST("/profile", r.Buyer.CreateProfile)
	by.GET("/marketplace", r.Buyer.Marketplace)
	by.POST("/contract/:id/accept", r.Buyer.Accept, idem)
	by.GET("/dashboard", r.Buyer.Dashboard)

	fm := priv.Group("/farmer", only(user.RoleFarmer))
	fm.POST("/profile", r.Farmer.CreateProfile)
	fm.GET("/dashboard", r.Farmer.Dashboard)
	fm.GET("/contracts", r.Farmer.Contracts)
	fm.POST("/crops", r.Farmer.AddCrop)
	fm.PUT("/crop/:cropId/status", r.Farmer.UpdateCropStatus)
	fm.GET("/demand", r.Farmer.Demand)

	pay := priv.Group("/payment", only(user.RoleBuyer, user.RoleAdmin), idem)
	pay.POST("/create-order", r.Payment.CreateOrder)
	pay.POST("/verify", r.Payment.Verify)

	adm := priv.Group("/admin", admin)
	adm.POST("/verify-user", r.Admin.VerifyUser)
	adm.POST("/moderate-contract", r.Admin.ModerateContract)
	adm.POST("/verify-quality", r.Admin.VerifyQuality)
	adm.GET("/analytics", r.Admin.Analytics)
	adm.GET("/audit", r.Admin.AuditLog)

	priv.POST("/quality", r.Quality.Submit, only(user.RoleFarmer, user.RoleAdmin))

	ai := priv.Group("/ai")
	ai.GET("/predict", r.Insight.Predict)
	ai.GET("/report", r.Insight.Report)
	ai.GET("/history/:contractId", r.Insight.History)

	dl := priv.Group("/delivery")
	dl.POST("", r.Delivery.Start)
	dl.PUT("/:id", r.Delivery.UpdateLocation)
	dl.GET("/status/:contractId", r.Delivery.StatusByContract)
	dl.POST("/:id/complete", r.Delivery.Complete)
	dl.GET("/eta", r.Delivery.ETA)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})
}
