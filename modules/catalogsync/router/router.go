package router

import (
	"localxp-api/modules/catalogsync/controller"

	"github.com/labstack/echo/v4"
)

type RefreshRouter struct {
	Controller *controller.RefreshController
}

func NewRefreshRouter(ctrl *controller.RefreshController) *RefreshRouter {
	return &RefreshRouter{Controller: ctrl}
}

func (r *RefreshRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	public := v1.Group("/public")
	public.POST("/catalog/refresh", r.Controller.Refresh)
}
