package booking

import (
	"localxp-api/core/clock"
	"localxp-api/core/metrics"
	"localxp-api/modules/booking/controller"
	"localxp-api/modules/booking/repository"
	"localxp-api/modules/booking/router"
	"localxp-api/modules/booking/service"
	expRepository "localxp-api/modules/experience/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, catalog expRepository.CatalogRepositoryInterface, clk clock.Clock, m *metrics.Metrics, feeRate float64) {
	repo := repository.NewBookingRepository()
	svc := service.NewBookingService(repo, catalog, service.NewStubGateway(), clk, m, feeRate)
	ctrl := controller.NewBookingController(svc)
	router.NewBookingRouter(ctrl).Setup(e)
}
