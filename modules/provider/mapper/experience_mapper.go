package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"localxp-api/core/utils"
	expEntity "localxp-api/modules/experience/entity"
	"localxp-api/modules/provider/dto"
	"localxp-api/modules/provider/entity"
)

const (
	ViatorPrefix       = "viator-"
	GetYourGuidePrefix = "gyg-"
	FeverPrefix        = "fever-"
	PartnerPrefix      = "partner-"

	// used when Viator sends no review stats
	defaultViatorRating = 4.5
)

// prefixedID namespaces a provider id so it cannot clash with other sources.
func prefixedID(prefix, id string) string {
	if id = strings.TrimSpace(id); id == "" {
		id = utils.GenerateID()
	}
	return prefix + id
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FromViator(items []dto.ViatorExperience) []expEntity.Experience {
	out := make([]expEntity.Experience, 0, len(items))
	for _, item := range items {
		exp := expEntity.Experience{
			ID:             prefixedID(ViatorPrefix, item.ID),
			Title:          item.Title,
			Description:    item.Description,
			Image:          item.ImageURL,
			Price:          item.Price.Amount,
			Duration:       fmt.Sprintf("%s %s", formatAmount(item.Duration.FixedDuration.Duration), item.Duration.FixedDuration.Unit),
			Location:       item.Location.Name,
			City:           item.Location.CityName,
			Region:         item.Location.RegionName,
			Country:        item.Location.CountryName,
			Rating:         defaultViatorRating,
			Categories:     item.Categories,
			Provider:       item.SupplierName,
			AvailableTimes: item.AvailableTimes,
			StartDate:      item.StartDate,
			EndDate:        item.EndDate,
			Trending:       item.IsBestSeller,
			HiddenGem:      item.IsLowAvailability,
			Source:         expEntity.SourceViator,
		}
		if c := item.Location.Coordinates; c != nil {
			exp.Coordinates = &expEntity.Coordinates{Lat: c.Latitude, Lng: c.Longitude}
		}
		if rs := item.ReviewStats; rs != nil {
			if rs.AverageRating > 0 {
				exp.Rating = rs.AverageRating
			}
			exp.ReviewCount = rs.TotalReviews
		}
		out = append(out, exp)
	}
	return out
}

func FromGetYourGuide(items []dto.GetYourGuideExperience) []expEntity.Experience {
	out := make([]expEntity.Experience, 0, len(items))
	for _, item := range items {
		exp := expEntity.Experience{
			ID:             prefixedID(GetYourGuidePrefix, item.ID),
			Title:          item.Title,
			Description:    item.Description,
			Image:          item.ImageURL,
			Price:          item.Price.Current,
			Duration:       item.Duration,
			Location:       item.Location,
			City:           item.City,
			Region:         item.Region,
			Country:        item.Country,
			Rating:         item.Rating,
			ReviewCount:    item.ReviewCount,
			Categories:     item.Categories,
			Provider:       item.Provider,
			AvailableTimes: item.AvailableTimes,
			StartDate:      item.AvailableFrom,
			EndDate:        item.AvailableTo,
			Trending:       item.IsBestseller,
			HiddenGem:      item.IsHiddenGem,
			SoldOut:        item.IsSoldOut,
			Source:         expEntity.SourceGetYourGuide,
		}
		if c := item.Coordinates; c != nil {
			exp.Coordinates = &expEntity.Coordinates{Lat: c.Lat, Lng: c.Lng}
		}
		if d := item.Discount; d != nil {
			percentage, validUntil := d.Percentage, d.ValidUntil
			exp.FlashDeal = true
			exp.DiscountPercentage = &percentage
			exp.FlashDealEndTime = &validUntil
		}
		out = append(out, exp)
	}
	return out
}

// FromFever maps scraped plans. The first session gives the dates; a plan
// without sessions is dated now.
func FromFever(items []dto.FeverExperience, now time.Time) []expEntity.Experience {
	out := make([]expEntity.Experience, 0, len(items))
	for _, item := range items {
		start, end := now, now
		if len(item.Sessions) > 0 {
			start, end = item.Sessions[0].StartTime, item.Sessions[0].EndTime
		}

		times := make([]string, 0, len(item.Sessions))
		for _, s := range item.Sessions {
			times = append(times, s.StartTime.In(now.Location()).Format("3:04 PM"))
		}

		image := ""
		if len(item.Media.Images) > 0 {
			image = item.Media.Images[0]
		}

		exp := expEntity.Experience{
			ID:             prefixedID(FeverPrefix, item.ID),
			Title:          item.Name,
			Description:    item.Description,
			Image:          image,
			Price:          item.Price.Value,
			Duration:       fmt.Sprintf("%s %s", formatAmount(item.Duration.Value), item.Duration.Unit),
			Location:       item.Venue.Name,
			City:           item.Venue.City,
			Region:         item.Venue.Region,
			Country:        item.Venue.Country,
			Rating:         item.Reviews.Average,
			ReviewCount:    item.Reviews.Count,
			Categories:     item.Tags,
			Provider:       item.Organizer,
			AvailableTimes: times,
			StartDate:      start,
			EndDate:        end,
			Trending:       item.Trending,
			HiddenGem:      item.Highlighted,
			SoldOut:        item.SoldOut,
			Languages:      item.Languages,
			Source:         expEntity.SourceFever,
		}
		if loc := item.Venue.Location; loc != nil {
			exp.Coordinates = &expEntity.Coordinates{Lat: loc.Latitude, Lng: loc.Longitude}
		}
		if f := item.Flash; f != nil {
			discount, endsAt := f.Discount, f.EndsAt
			exp.FlashDeal = true
			exp.DiscountPercentage = &discount
			exp.FlashDealEndTime = &endsAt
		}
		out = append(out, exp)
	}
	return out
}

// FromPartner maps partner feed rows. A discount only becomes a flash deal
// when it carries an end time.
func FromPartner(rows []entity.PartnerExperience) []expEntity.Experience {
	out := make([]expEntity.Experience, 0, len(rows))
	for _, row := range rows {
		exp := expEntity.Experience{
			ID:             prefixedID(PartnerPrefix, row.ID),
			Title:          row.Title,
			Description:    row.Description,
			Image:          row.ImageURL,
			Price:          row.Price,
			Duration:       row.Duration,
			Location:       row.Venue,
			City:           row.City,
			Region:         row.Region.String,
			Country:        row.Country.String,
			Rating:         row.Rating,
			ReviewCount:    row.ReviewCount,
			Categories:     []string(row.Categories),
			Provider:       row.PartnerName,
			AvailableTimes: []string(row.AvailableTimes),
			StartDate:      row.StartsAt,
			EndDate:        row.EndsAt,
			SoldOut:        row.SoldOut,
			Languages:      []string(row.Languages),
			ActivityType:   []string(row.ActivityTypes),
			Source:         expEntity.SourcePartner,
		}
		if row.Latitude.Valid && row.Longitude.Valid {
			exp.Coordinates = &expEntity.Coordinates{Lat: row.Latitude.Float64, Lng: row.Longitude.Float64}
		}
		if row.DiscountPercentage.Valid && row.DiscountEndsAt.Valid {
			discount, endsAt := row.DiscountPercentage.Float64, row.DiscountEndsAt.Time
			exp.FlashDeal = true
			exp.DiscountPercentage = &discount
			exp.FlashDealEndTime = &endsAt
		}
		if row.RecommendationScore.Valid {
			score := row.RecommendationScore.Float64
			exp.RecommendationScore = &score
		}
		out = append(out, exp)
	}
	return out
}
