package router

import (
	"localxp-api/modules/experience/controller"

	"github.com/labstack/echo/v4"
)

// ExperienceRouter handles catalog routes
type ExperienceRouter struct {
	ExperienceController *controller.ExperienceController
}

// NewExperienceRouter creates a new router
func NewExperienceRouter(ctrl *controller.ExperienceController) *ExperienceRouter {
	return &ExperienceRouter{ExperienceController: ctrl}
}

// Setup registers catalog routes
func (r *ExperienceRouter) Setup(e *echo.Echo) {
	public := e.Group("/api/v1/public")

	experiences := public.Group("/experiences")
	experiences.GET("", r.ExperienceController.ListExperiences)
	experiences.GET("/trending", r.ExperienceController.Trending)
	experiences.GET("/hidden-gems", r.ExperienceController.HiddenGems)
	experiences.GET("/flash-deals", r.ExperienceController.FlashDeals)
	experiences.GET("/personalized", r.ExperienceController.Personalized)
	experiences.GET("/:id", r.ExperienceController.GetExperience)

	public.GET("/facets", r.ExperienceController.Facets)
	public.GET("/interests", r.ExperienceController.Interests)
	public.GET("/catalog", r.ExperienceController.CatalogInfo)
}
