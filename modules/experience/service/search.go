package service

import (
	"strings"

	"localxp-api/modules/experience/entity"
)

// MatchesQuery does a case-insensitive substring match over the searchable text fields.
func MatchesQuery(exp entity.Experience, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	fields := []string{exp.Title, exp.Description, exp.Location, exp.City, exp.Provider}
	fields = append(fields, exp.Categories...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
