package main

import (
	"context"
	"log"
	"os"

	"assessly/cmd/fx/db_fx"
	"assessly/cmd/fx/template_fx"
	"assessly/internal/api/controllers"
	"assessly/internal/infra"
	"assessly/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		template_fx.Module,

		fx.Invoke(RunMigrations),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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

func ProvideRouter(templatesController *controllers.TemplatesController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, templatesController)

	return r
}

func RegisterRoutes(r *gin.Engine, templatesController *controllers.TemplatesController) {
	templatesGroup := r.Group("/templates")
	templatesGroup.Use(middleware.JWTAuthMiddleware())
	templatesGroup.GET("", templatesController.ListTemplatesHandler)
	templatesGroup.GET("/:id", templatesController.GetTemplateDraftHandler)
	templatesGroup.POST("", templatesController.CreateTemplateHandler)
	templatesGroup.PUT("/:id", templatesController.UpdateTemplateHandler)
	templatesGroup.PATCH("/:id/active", templatesController.SetTemplateActiveHandler)
}
