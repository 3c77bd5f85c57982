package service

import (
	"sort"

	"localxp-api/core/constants"
	"localxp-api/modules/experience/entity"
)

// RecommendationScore returns the stored score or the neutral default.
func RecommendationScore(exp entity.Experience) float64 {
	if exp.RecommendationScore == nil {
		return constants.DefaultRecommendationScore
	}
	return *exp.RecommendationScore
}

// Personalized picks the best-scored experiences in location that share a
// category with interests. Equal scores keep catalog order.
func Personalized(records []entity.Experience, interests []string, location string) []entity.Experience {
	matches := selectWhere(records, func(e entity.Experience) bool {
		if location != "" && e.City != location {
			return false
		}
		return len(interests) == 0 || intersects(e.Categories, interests)
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return RecommendationScore(matches[i]) > RecommendationScore(matches[j])
	})

	if len(matches) > constants.PersonalizedLimit {
		return matches[:constants.PersonalizedLimit]
	}
	return matches
}
