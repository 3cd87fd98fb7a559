package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizmaker/cmd/fx/account_fx"
	"quizmaker/cmd/fx/announcement_fx"
	"quizmaker/cmd/fx/controllers_fx"
	"quizmaker/cmd/fx/dashboard_fx"
	"quizmaker/cmd/fx/db_fx"
	"quizmaker/cmd/fx/export_fx"
	"quizmaker/cmd/fx/generator_fx"
	"quizmaker/cmd/fx/lead_fx"
	"quizmaker/cmd/fx/mail_fx"
	"quizmaker/cmd/fx/memcache_fx"
	"quizmaker/cmd/fx/payment_fx"
	"quizmaker/cmd/fx/quiz_fx"
	"quizmaker/cmd/fx/resolution_fx"
	"quizmaker/internal/api/controllers"
	"quizmaker/internal/infra"
	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		quiz_fx.Module,
		resolution_fx.Module,
		payment_fx.Module,
		generator_fx.Module,
		export_fx.Module,
		lead_fx.Module,
		announcement_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	resolutionController *controllers.ResolutionController,
	paymentController *controllers.PaymentController,
	generatorController *controllers.GeneratorController,
	exportController *controllers.ExportController,
	leadController *controllers.LeadController,
	announcementController *controllers.AnnouncementController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		quizController,
		resolutionController,
		paymentController,
		generatorController,
		exportController,
		leadController,
		announcementController,
		dashboardController,
	)
	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
	resolutionController *controllers.ResolutionController,
	paymentController *controllers.PaymentController,
	generatorController *controllers.GeneratorController,
	exportController *controllers.ExportController,
	leadController *controllers.LeadController,
	announcementController *controllers.AnnouncementController,
	dashboardController *controllers.DashboardController,
) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.POST("/recovery-session", accountController.RecoverySession)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	resolution := r.Group("/resolution")
	resolution.POST("/navigate", resolutionController.Navigate)
	resolution.GET("/state/:session_id", resolutionController.State)

	quizzes := r.Group("/quizzes")
	quizzes.GET("", quizController.List)
	quizzes.GET("/mine", middleware.JWTAuthMiddleware(), quizController.ListMine)
	quizzes.GET("/:identifier", quizController.Get)
	quizzes.GET("/:identifier/similar", quizController.ListSimilar)
	quizzes.POST("", middleware.OptionalJWTMiddleware(), quizController.Create)
	quizzes.PUT("/:identifier", middleware.JWTAuthMiddleware(), quizController.Update)
	quizzes.DELETE("/:identifier", middleware.JWTAuthMiddleware(), quizController.Delete)
	quizzes.POST("/:identifier/score", quizController.Score)
	quizzes.POST("/:identifier/events/:event", quizController.TrackEvent)
	quizzes.POST("/:identifier/slug", middleware.JWTAuthMiddleware(), quizController.RegenerateSlug)

	payments := r.Group("/payments")
	payments.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	payments.POST("/webhook", paymentController.Webhook)
	payments.GET("/entitlements", middleware.JWTAuthMiddleware(), paymentController.ListEntitlements)

	generator := r.Group("/generator")
	generator.POST("/draft", middleware.JWTAuthMiddleware(), generatorController.GenerateDraft)

	exports := r.Group("/exports")
	exports.GET("/:identifier/preview", exportController.Preview)
	exports.POST("/:identifier/publish", middleware.JWTAuthMiddleware(), exportController.Publish)

	leads := r.Group("/leads", middleware.JWTAuthMiddleware())
	leads.GET("/:quiz_id", leadController.List)
	leads.GET("/:quiz_id/csv", leadController.ExportCSV)

	announcements := r.Group("/announcements")
	announcements.GET("", announcementController.ListActive)
	admin := middleware.RoleMiddleware(db_models.RoleAdmin)
	announcements.GET("/all", middleware.JWTAuthMiddleware(), admin, announcementController.ListAll)
	announcements.POST("", middleware.JWTAuthMiddleware(), admin, announcementController.Create)
	announcements.PUT("/:id", middleware.JWTAuthMiddleware(), admin, announcementController.Update)
	announcements.DELETE("/:id", middleware.JWTAuthMiddleware(), admin, announcementController.Delete)

	r.GET("/dashboard", middleware.JWTAuthMiddleware(), dashboardController.Report)
}
