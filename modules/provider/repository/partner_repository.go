package repository

import (
	"context"
	"time"

	"localxp-api/core/logger"
	"localxp-api/modules/provider/entity"
)

// Selector is the part of the database handle the partner feed reads through.
type Selector interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// PartnerRepositoryInterface defines the partner feed contract
type PartnerRepositoryInterface interface {
	ListUpcoming(ctx context.Context, city string, since time.Time) ([]entity.PartnerExperience, error)
}

// PartnerRepository reads listings partners publish into partner_experiences
type PartnerRepository struct {
	DB Selector
}

func NewPartnerRepository(db Selector) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

// ListUpcoming returns listings that have not ended yet. An empty city
// returns every city.
func (r *PartnerRepository) ListUpcoming(ctx context.Context, city string, since time.Time) ([]entity.PartnerExperience, error) {
	query := `
		SELECT id, title, description, image_url, price, duration, venue, city, region, country,
		       latitude, longitude, rating, review_count, categories, partner_name, available_times,
		       languages, activity_types, starts_at, ends_at, discount_percentage, discount_ends_at,
		       sold_out, recommendation_score, updated_at
		FROM partner_experiences
		WHERE ends_at >= $1 AND ($2 = '' OR city = $2 OR region = $2)
		ORDER BY starts_at, id
	`

	rows := []entity.PartnerExperience{}
	if err := r.DB.SelectContext(ctx, &rows, query, since, city); err != nil {
		logger.Error("PartnerRepository:ListUpcoming", err)
		return nil, err
	}
	return rows, nil
}
