package controller

import (
	"localxp-api/core/controller"
	"localxp-api/core/errors"
	"localxp-api/core/logger"
	"localxp-api/modules/catalogsync/dto"
	"localxp-api/modules/catalogsync/mapper"
	"localxp-api/modules/catalogsync/service"

	"github.com/labstack/echo/v4"
)

type RefreshController struct {
	controller.BaseController
	RefreshService service.RefreshServiceInterface
}

func NewRefreshController(svc service.RefreshServiceInterface) *RefreshController {
	return &RefreshController{
		BaseController: controller.NewBaseController(),
		RefreshService: svc,
	}
}

// Refresh handles POST /catalog/refresh
// @Summary Rebuild the catalog from every listing source
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest false "Location to refresh"
// @Success 200 {object} dto.RefreshResponse
// @Failure 409 {object} controller.ErrorResponse
// @Failure 502 {object} controller.ErrorResponse
// @Router /public/catalog/refresh [post]
func (c *RefreshController) Refresh(ctx echo.Context) error {
	var req dto.RefreshRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&req); err != nil {
			logger.Warn("RefreshController:Refresh:Bind", "error", err)
			return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
		}
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.RefreshService.Refresh(ctx.Request().Context(), req.Location)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToRefreshResponse(result), "Catalog refreshed successfully")
}
