package template_fx

import (
	"assessly/internal/api/controllers"
	"assessly/internal/repositories"
	"assessly/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideTemplateRepo, provideTemplateService, provideTemplatesController)

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideTemplateService(templateRepo repositories.TemplateRepository) services.TemplateServiceInterface {
	return services.NewTemplateService(templateRepo)
}

func provideTemplatesController(templateService services.TemplateServiceInterface) *controllers.TemplatesController {
	return controllers.NewTemplatesController(templateService)
}
