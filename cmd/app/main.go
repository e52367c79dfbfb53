package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"beacon/cmd/fx/account_fx"
	"beacon/cmd/fx/config_fx"
	"beacon/cmd/fx/controllers_fx"
	"beacon/cmd/fx/db_fx"
	"beacon/cmd/fx/events_fx"
	"beacon/cmd/fx/redis_fx"
	"beacon/cmd/fx/report_fx"
	"beacon/cmd/fx/reward_fx"
	"beacon/internal/api/controllers"
	"beacon/internal/config"
	"beacon/internal/events"
	"beacon/internal/repositories"
	"beacon/pkg/middleware"
	"beacon/pkg/tokencache"
	"beacon/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		events_fx.Module,
		account_fx.Module,
		report_fx.Module,
		reward_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *logrus.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server on port %s", cfg.HTTPPort)
				if err := engine.Run(":" + cfg.HTTPPort); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
	rewardController *controllers.RewardController,
	adminController *controllers.AdminController,
	hub *events.Hub,
	jwtMaker *utils.JWTMaker,
	denylist tokencache.Denylist,
	accountRepo repositories.AccountRepository,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, reportController, rewardController, adminController,
		hub, jwtMaker, denylist, accountRepo)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
	rewardController *controllers.RewardController,
	adminController *controllers.AdminController,
	hub *events.Hub,
	jwtMaker *utils.JWTMaker,
	denylist tokencache.Denylist,
	accountRepo repositories.AccountRepository,
) {

	r.POST("/login", authController.Login)
	r.POST("/register", authController.Register)

	authed := r.Group("/", middleware.JWTAuthMiddleware(jwtMaker, denylist, accountRepo))

	authed.POST("/logout", authController.Logout)
	authed.GET("/user", authController.CurrentUser)
	authed.PUT("/profile/update", authController.UpdateProfile)

	authed.POST("/report-emergency", reportController.Submit)
	authed.GET("/me/emergencies", reportController.ListMine)
	authed.GET("/me/rewards", rewardController.ListMine)
	authed.POST("/claim-reward", rewardController.Claim)

	authed.GET("/responder/emergencies", reportController.ListForResponder)
	authed.POST("/emergencies/:id/verify", reportController.Verify)
	authed.POST("/emergencies/:id/resolve", reportController.Resolve)
	authed.POST("/emergency/:id/decline", reportController.Decline)

	authed.POST("/process-reward/:id", adminController.ProcessClaim)

	authed.GET("/ws", func(c *gin.Context) {
		hub.ServeClient(c.Writer, c.Request)
	})

	adminGroup := authed.Group("/admin", middleware.AdminOnlyMiddleware())
	adminGroup.GET("/responders", adminController.ListResponders)
	adminGroup.POST("/responders/:id/approve", adminController.ApproveResponder)
	adminGroup.POST("/responders/:id/decline", adminController.DeclineResponder)
	adminGroup.GET("/emergencies", adminController.ListEmergencies)
	adminGroup.GET("/leaderboard", adminController.Leaderboard)
	adminGroup.GET("/claimrequests", adminController.ListClaims)
}
