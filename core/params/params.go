package params

import (
	"strconv"
	"strings"

	"localxp-api/core/constants"

	"github.com/labstack/echo/v4"
)

type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
	Sort       string
}

func NewQueryParams(c echo.Context) *QueryParams {
	pageNumber, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}

	pageSize, err := strconv.Atoi(c.QueryParam("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return &QueryParams{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.QueryParam("q")),
		Sort:       c.QueryParam("sort"),
	}
}

// List returns every value of a query parameter, accepting both repeated keys
// and comma separated values. Blank items are skipped.
func List(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Bool parses an optional boolean query parameter. Absent means false.
func Bool(c echo.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// Float parses an optional decimal query parameter. Absent yields nil.
func Float(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Int parses an optional integer query parameter, returning def when absent.
func Int(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
