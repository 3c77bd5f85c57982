package service

import "localxp-api/modules/experience/entity"

// DisplayPrice is the amount shown to users: the flash deal price when a
// discount applies, the list price otherwise.
func DisplayPrice(exp entity.Experience) float64 {
	if exp.FlashDeal && exp.DiscountPercentage != nil && *exp.DiscountPercentage > 0 {
		return exp.Price * (1 - *exp.DiscountPercentage/100)
	}
	return exp.Price
}

// HasActiveDiscount reports whether DisplayPrice differs from the list price.
func HasActiveDiscount(exp entity.Experience) bool {
	return DisplayPrice(exp) < exp.Price
}
