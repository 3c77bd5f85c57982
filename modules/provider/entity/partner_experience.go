package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// PartnerExperience maps the partner_experiences table
type PartnerExperience struct {
	ID                  string          `db:"id"`
	Title               string          `db:"title"`
	Description         string          `db:"description"`
	ImageURL            string          `db:"image_url"`
	Price               float64         `db:"price"`
	Duration            string          `db:"duration"`
	Venue               string          `db:"venue"`
	City                string          `db:"city"`
	Region              sql.NullString  `db:"region"`
	Country             sql.NullString  `db:"country"`
	Latitude            sql.NullFloat64 `db:"latitude"`
	Longitude           sql.NullFloat64 `db:"longitude"`
	Rating              float64         `db:"rating"`
	ReviewCount         int             `db:"review_count"`
	Categories          pq.StringArray  `db:"categories"`
	PartnerName         string          `db:"partner_name"`
	AvailableTimes      pq.StringArray  `db:"available_times"`
	Languages           pq.StringArray  `db:"languages"`
	ActivityTypes       pq.StringArray  `db:"activity_types"`
	StartsAt            time.Time       `db:"starts_at"`
	EndsAt              time.Time       `db:"ends_at"`
	DiscountPercentage  sql.NullFloat64 `db:"discount_percentage"`
	DiscountEndsAt      sql.NullTime    `db:"discount_ends_at"`
	SoldOut             bool            `db:"sold_out"`
	RecommendationScore sql.NullFloat64 `db:"recommendation_score"`
	UpdatedAt           time.Time       `db:"updated_at"`
}
