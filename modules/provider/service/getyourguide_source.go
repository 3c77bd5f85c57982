package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"localxp-api/modules/experience/entity"
	"localxp-api/modules/provider/dto"
	"localxp-api/modules/provider/mapper"
)

type GetYourGuideSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewGetYourGuideSource(baseURL, apiKey string, timeout time.Duration) *GetYourGuideSource {
	return &GetYourGuideSource{
		client:  newHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (s *GetYourGuideSource) Name() string { return SourceGetYourGuide }

func (s *GetYourGuideSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	var body dto.GetYourGuideSearchResponse
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}
	if err := getJSON(ctx, s.client, s.Name(), s.baseURL+"/activities", location, headers, &body); err != nil {
		return nil, err
	}
	return mapper.FromGetYourGuide(body.Activities), nil
}
