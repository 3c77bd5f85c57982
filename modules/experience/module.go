package experience

import (
	"localxp-api/core/clock"
	"localxp-api/modules/experience/controller"
	"localxp-api/modules/experience/repository"
	"localxp-api/modules/experience/router"
	"localxp-api/modules/experience/service"

	"github.com/labstack/echo/v4"
)

// Init registers the catalog routes over the shared store
func Init(e *echo.Echo, repo repository.CatalogRepositoryInterface, clk clock.Clock) *service.ExperienceService {
	svc := service.NewExperienceService(repo, clk)
	ctrl := controller.NewExperienceController(svc)
	router.NewExperienceRouter(ctrl).Setup(e)
	return svc
}
