package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hospital-billing-backend/internal/config"
	handler "hospital-billing-backend/internal/handlers"
	"hospital-billing-backend/internal/middleware"
	"hospital-billing-backend/internal/repository"
	"hospital-billing-backend/internal/services/billing"
	"hospital-billing-backend/internal/services/insurance"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	reportRepo := repository.NewReportRepository(db)

	billingService := billing.NewBillingService(
		billRepo,
		paymentRepo,
		patientRepo,
		staffRepo,
		reportRepo,
		log,
	)
	claimService := insurance.NewClaimService(claimRepo, billRepo, log)

	billingHandler := handler.NewBillingHandler(billingService)
	insuranceHandler := handler.NewInsuranceHandler(claimService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))

	// Billing ledger routes
	bills := authed.Group("/billing")
	bills.GET("", billingHandler.ListBills)
	bills.POST("", billingHandler.GenerateBill)
	bills.GET("/reports/daily", billingHandler.DailyReport)
	bills.GET("/reports/monthly", billingHandler.MonthlyReport)
	bills.GET("/payments/:id", billingHandler.ListPayments)
	bills.POST("/payments", billingHandler.RecordPayment)
	bills.POST("/expenses", billingHandler.RecordExpense)
	bills.GET("/:id", billingHandler.GetBill)

	// Insurance claim routes
	claims := authed.Group("/insurance/claims")
	claims.GET("", insuranceHandler.ListClaims)
	claims.POST("", insuranceHandler.FileClaim)
	claims.PUT("/:id", insuranceHandler.UpdateClaimStatus)

	// Reference lookups for dropdowns
	authed.GET("/patients", billingHandler.ListPatients)
	authed.GET("/staff", billingHandler.ListStaff)
}
