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

type ViatorSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewViatorSource(baseURL, apiKey string, timeout time.Duration) *ViatorSource {
	return &ViatorSource{
		client:  newHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (s *ViatorSource) Name() string { return SourceViator }

func (s *ViatorSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	var body dto.ViatorSearchResponse
	headers := map[string]string{"exp-api-key": s.apiKey}
	if err := getJSON(ctx, s.client, s.Name(), s.baseURL+"/products/search", location, headers, &body); err != nil {
		return nil, err
	}
	return mapper.FromViator(body.Products), nil
}
