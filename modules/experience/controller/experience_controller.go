package controller

import (
	"fmt"
	"strings"

	"localxp-api/core/controller"
	coreEntity "localxp-api/core/entity"
	"localxp-api/core/errors"
	"localxp-api/core/params"
	"localxp-api/modules/experience/mapper"
	"localxp-api/modules/experience/service"

	"github.com/labstack/echo/v4"
)

// ExperienceController handles catalog HTTP requests
type ExperienceController struct {
	controller.BaseController
	ExperienceService service.ExperienceServiceInterface
}

// NewExperienceController creates a new controller
func NewExperienceController(svc service.ExperienceServiceInterface) *ExperienceController {
	return &ExperienceController{
		BaseController:    controller.NewBaseController(),
		ExperienceService: svc,
	}
}

// ListExperiences handles GET /experiences
// @Summary Search experiences
// @Tags Experience
// @Produce json
// @Param interests query []string false "Category names"
// @Param time_frame query string false "today | next48hours | all"
// @Param sort query string false "price-asc | price-desc | rating-desc | time-asc"
// @Success 200 {object} dto.PaginatedExperienceResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /public/experiences [get]
func (c *ExperienceController) ListExperiences(ctx echo.Context) error {
	criteria, err := ParseCriteria(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	qp := params.NewQueryParams(ctx)
	criteria.Query = qp.Search

	results := c.ExperienceService.Search(ctx.Request().Context(), criteria, service.SortOption(qp.Sort))
	page := coreEntity.Paginate(results, qp.PageNumber, qp.PageSize)

	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToPaginatedExperienceResponse(page, loc), "Experiences retrieved successfully")
}

// GetExperience handles GET /experiences/:id
// @Summary Get an experience
// @Tags Experience
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} dto.ExperienceResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /public/experiences/{id} [get]
func (c *ExperienceController) GetExperience(ctx echo.Context) error {
	exp, appErr := c.ExperienceService.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToExperienceResponse(*exp, loc), "Experience retrieved successfully")
}

// Trending handles GET /experiences/trending
func (c *ExperienceController) Trending(ctx echo.Context) error {
	results := c.ExperienceService.Trending(ctx.Request().Context())
	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToExperienceResponses(results, loc), "Trending experiences retrieved successfully")
}

// HiddenGems handles GET /experiences/hidden-gems
func (c *ExperienceController) HiddenGems(ctx echo.Context) error {
	results := c.ExperienceService.HiddenGems(ctx.Request().Context())
	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToExperienceResponses(results, loc), "Hidden gems retrieved successfully")
}

// FlashDeals handles GET /experiences/flash-deals
func (c *ExperienceController) FlashDeals(ctx echo.Context) error {
	results := c.ExperienceService.FlashDeals(ctx.Request().Context())
	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToExperienceResponses(results, loc), "Flash deals retrieved successfully")
}

// Personalized handles GET /experiences/personalized
// @Summary Top ten picks for a user's interests in a city
// @Tags Experience
// @Produce json
// @Param interests query []string false "Interest names"
// @Param location query string false "City"
// @Router /public/experiences/personalized [get]
func (c *ExperienceController) Personalized(ctx echo.Context) error {
	interests := params.List(ctx, "interests")
	location := strings.TrimSpace(ctx.QueryParam("location"))

	results := c.ExperienceService.Personalized(ctx.Request().Context(), interests, location)
	loc := c.ExperienceService.Now().Location()
	return c.SuccessResponse(ctx, mapper.ToExperienceResponses(results, loc), "Recommendations retrieved successfully")
}

// Facets handles GET /facets
func (c *ExperienceController) Facets(ctx echo.Context) error {
	facets := c.ExperienceService.Facets(ctx.Request().Context())
	return c.SuccessResponse(ctx, mapper.ToFacetsResponse(facets), "Facets retrieved successfully")
}

// Interests handles GET /interests
func (c *ExperienceController) Interests(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.ExperienceService.Interests(ctx.Request().Context()), "Interests retrieved successfully")
}

// CatalogInfo handles GET /catalog
func (c *ExperienceController) CatalogInfo(ctx echo.Context) error {
	info := c.ExperienceService.CatalogInfo(ctx.Request().Context())
	return c.SuccessResponse(ctx, mapper.ToCatalogInfoResponse(info), "Catalog info retrieved successfully")
}

// ParseCriteria reads the facet query parameters. Only unparseable numbers
// and booleans are rejected; unknown values just narrow or widen the result.
func ParseCriteria(ctx echo.Context) (service.FilterCriteria, error) {
	criteria := service.FilterCriteria{
		Interests:     params.List(ctx, "interests"),
		TimeFrame:     service.TimeFrame(strings.ToLower(strings.TrimSpace(ctx.QueryParam("time_frame")))),
		Cities:        params.List(ctx, "cities"),
		Languages:     params.List(ctx, "languages"),
		ActivityTypes: params.List(ctx, "activity_types"),
		Location:      strings.TrimSpace(ctx.QueryParam("location")),
	}

	for _, tod := range params.List(ctx, "time_of_day") {
		criteria.TimesOfDay = append(criteria.TimesOfDay, service.TimeOfDay(strings.ToLower(tod)))
	}

	flags := map[string]*bool{
		"trending_only":   &criteria.TrendingOnly,
		"hidden_gem_only": &criteria.HiddenGemOnly,
		"flash_deal_only": &criteria.FlashDealOnly,
	}
	for name, dst := range flags {
		v, err := params.Bool(ctx, name)
		if err != nil {
			return criteria, fmt.Errorf("invalid %s", name)
		}
		*dst = v
	}

	maxPrice, err := params.Float(ctx, "max_price")
	if err != nil {
		return criteria, fmt.Errorf("invalid max_price")
	}
	criteria.MaxPrice = maxPrice

	access := service.AccessibilityCriteria{
		Mobility:      params.List(ctx, "mobility"),
		Communication: params.List(ctx, "communication"),
		Sensory:       params.List(ctx, "sensory"),
	}
	access.FreeForAssistants, err = params.Bool(ctx, "free_for_assistants")
	if err != nil {
		return criteria, fmt.Errorf("invalid free_for_assistants")
	}
	if len(access.Mobility) > 0 || len(access.Communication) > 0 || len(access.Sensory) > 0 || access.FreeForAssistants {
		criteria.Accessibility = &access
	}

	return criteria, nil
}
