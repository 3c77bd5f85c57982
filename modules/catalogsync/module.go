package catalogsync

import (
	"localxp-api/core/constants"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/core/queue"
	"localxp-api/modules/catalogsync/controller"
	"localxp-api/modules/catalogsync/router"
	"localxp-api/modules/catalogsync/service"
	"localxp-api/modules/catalogsync/task"
	"localxp-api/modules/experience/repository"
	providerService "localxp-api/modules/provider/service"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Repo     repository.CatalogRepositoryInterface
	Base     providerService.Source
	Fetcher  service.Fetcher
	Metrics  *metrics.Metrics
	Location string
	// Worker is nil when scheduled refresh is disabled.
	Worker *queue.Worker
	Cron   string
}

// Init registers the refresh route and, with a worker, the scheduled refresh task
func Init(e *echo.Echo, d Deps) (*service.RefreshService, error) {
	svc := service.NewRefreshService(d.Repo, d.Base, d.Fetcher, d.Metrics, d.Location)
	ctrl := controller.NewRefreshController(svc)
	router.NewRefreshRouter(ctrl).Setup(e)

	if d.Worker == nil {
		return svc, nil
	}

	d.Worker.Handle(constants.TaskCatalogRefresh, task.NewRefreshHandler(svc).ProcessTask)
	t, err := task.NewRefreshTask(d.Location)
	if err != nil {
		return nil, err
	}
	if err := d.Worker.Schedule(d.Cron, t); err != nil {
		return nil, err
	}
	logger.Info("CatalogSync:Init:Scheduled", "cron", d.Cron, "location", d.Location)
	return svc, nil
}
