package service

import "localxp-api/modules/experience/entity"

type AccessibilityFeatures struct {
	Mobility      []string `json:"mobility"`
	Communication []string `json:"communication"`
	Sensory       []string `json:"sensory"`
}

// distinct keeps the first occurrence of every value.
type distinct struct {
	seen   map[string]struct{}
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: map[string]struct{}{}, values: []string{}}
}

func (d *distinct) add(values ...string) {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := d.seen[v]; ok {
			continue
		}
		d.seen[v] = struct{}{}
		d.values = append(d.values, v)
	}
}

func AllCities(records []entity.Experience) []string {
	d := newDistinct()
	for _, exp := range records {
		d.add(exp.City)
	}
	return d.values
}

func AllLanguages(records []entity.Experience) []string {
	d := newDistinct()
	for _, exp := range records {
		d.add(exp.Languages...)
	}
	return d.values
}

func AllActivityTypes(records []entity.Experience) []string {
	d := newDistinct()
	for _, exp := range records {
		d.add(exp.ActivityType...)
	}
	return d.values
}

func AllAccessibilityFeatures(records []entity.Experience) AccessibilityFeatures {
	mobility, communication, sensory := newDistinct(), newDistinct(), newDistinct()
	for _, exp := range records {
		if exp.AccessibilityFeatures == nil {
			continue
		}
		mobility.add(exp.AccessibilityFeatures.Mobility...)
		communication.add(exp.AccessibilityFeatures.Communication...)
		sensory.add(exp.AccessibilityFeatures.Sensory...)
	}
	return AccessibilityFeatures{
		Mobility:      mobility.values,
		Communication: communication.values,
		Sensory:       sensory.values,
	}
}
