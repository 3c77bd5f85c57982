package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"localxp-api/core/clock"
	"localxp-api/core/constants"
	"localxp-api/core/utils"
	"localxp-api/modules/experience/entity"
	"localxp-api/modules/provider/dto"
	"localxp-api/modules/provider/mapper"

	"github.com/goccy/go-json"
	"github.com/gocolly/colly/v2"
)

const feverDataSelector = `script#fever-data`

var ErrFeverDataMissing = errors.New("fever: page has no fever-data script")

// FeverSource scrapes the plans embedded in Fever's city pages.
type FeverSource struct {
	baseURL   string
	collector *colly.Collector
	clock     clock.Clock
}

func NewFeverSource(baseURL string, timeout time.Duration, clk clock.Clock) (*FeverSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("fever: invalid base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = constants.ProviderHTTPTimeout
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.AllowURLRevisit(),
		colly.UserAgent("Mozilla/5.0 (compatible; localxp-catalog/1.0)"),
	)
	c.SetRequestTimeout(timeout)

	return &FeverSource{
		baseURL:   strings.TrimRight(baseURL, "/"),
		collector: c,
		clock:     clk,
	}, nil
}

func (s *FeverSource) Name() string { return SourceFever }

func (s *FeverSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := s.collector.Clone()
	c.Context = ctx

	var (
		items    []dto.FeverExperience
		found    bool
		parseErr error
	)
	c.OnHTML(feverDataSelector, func(e *colly.HTMLElement) {
		if found {
			return
		}
		found = true
		if err := json.Unmarshal([]byte(strings.TrimSpace(e.Text)), &items); err != nil {
			parseErr = fmt.Errorf("fever: decode plans: %w", err)
		}
	})

	pageURL := s.baseURL + "/" + utils.Slug(location)
	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("fever: visit %s: %w", pageURL, err)
	}
	c.Wait()

	if parseErr != nil {
		return nil, parseErr
	}
	if !found {
		return nil, ErrFeverDataMissing
	}
	return mapper.FromFever(items, s.clock.Now()), nil
}
