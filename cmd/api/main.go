package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "goldloan-backend/internal/adapter/http"
	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/adapter/repository/mysql"
	"goldloan-backend/internal/config"
	"goldloan-backend/internal/infrastructure/cache"
	"goldloan-backend/internal/infrastructure/db"
	loanuc "goldloan-backend/internal/usecase/loan"
	rateuc "goldloan-backend/internal/usecase/rate"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	// repositories + unit of work
	loans := mysql.NewLoanRepository(gdb)
	assets := mysql.NewAssetRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	loanUC := loanuc.NewUsecase(loans, assets, customers, guow,
		loanuc.RepoKycVerifier{Customers: customers},
		loanuc.Config{
			MinLoanAmount:          cfg.MinLoanAmount,
			StrictStaffTransitions: cfg.StrictStaffTransitions,
		}, log)
	rateUC := rateuc.NewUsecase(rdb, cfg.GoldRatePerGram24K,
		time.Duration(cfg.RateCacheTTLSecs)*time.Second, log)

	// handlers
	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	staffH := httpadp.NewStaffHandler(loanUC)
	rateH := httpadp.NewRateHandler(rateUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := middleware.JWTAuth(cfg.JWTSecret)
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// customer-facing lifecycle
	cust := e.Group("/api/loans", auth, middleware.RequireCustomer())
	cust.POST("", loanH.CreateLoan, idemp)
	cust.GET("", loanH.ListLoans)
	cust.GET("/:ref_code", loanH.GetLoan)
	cust.POST("/:ref_code/collateral", loanH.SubmitCollateral, idemp)
	cust.POST("/:ref_code/offer-decision", loanH.OfferDecision, idemp)
	cust.POST("/:ref_code/fine-payment", loanH.PayFine, idemp)
	cust.POST("/:ref_code/re-apply", loanH.ReApply, idemp)

	// institution-side lifecycle
	staff := e.Group("/api/staff/loans", auth, middleware.RequireStaff())
	staff.GET("", staffH.ListAllLoans)
	staff.GET("/:ref_code", loanH.GetLoan)
	staff.PATCH("/:ref_code/status", staffH.UpdateStatus, idemp)
	staff.POST("/:ref_code/evaluation", staffH.Evaluate, idemp)
	staff.POST("/:ref_code/disbursement", staffH.Disburse, idemp)
	staff.POST("/:ref_code/collection", staffH.CollectGold, idemp)

	// public gold rate quote
	e.GET("/api/rates/gold", rateH.GoldRate)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("starting server")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
