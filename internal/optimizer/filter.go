package optimizer

import (
	"strings"
)

// FilterConfig drives the eligibility partition: which product categories
// are perishable and which vehicle type counts as refrigerated.
type FilterConfig struct {
	PerishableCategories []string
	RefrigeratedType     string
}

// DefaultFilterConfig returns the stock partition used by the dispatch
// planners.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		PerishableCategories: []string{"Food & Beverage", "Healthcare"},
		RefrigeratedType:     "refrigerated unit",
	}
}

// IsPerishable reports whether the product category requires refrigeration.
// Matching is case-insensitive; the category lists are authored by hand.
func (c FilterConfig) IsPerishable(category string) bool {
	for _, p := range c.PerishableCategories {
		if strings.EqualFold(p, category) {
			return true
		}
	}
	return false
}

// EligibleVehicles returns the subset of the fleet that may carry an order
// of the given product category: perishable orders get exactly the
// refrigerated type, everything else gets every non-refrigerated type. An
// empty subset is ErrNoEligibleVehicle, never a silent empty slice.
func EligibleVehicles(fleet []Vehicle, category string, cfg FilterConfig) ([]Vehicle, error) {
	perishable := cfg.IsPerishable(category)

	eligible := make([]Vehicle, 0, len(fleet))
	for _, v := range fleet {
		refrigerated := strings.EqualFold(v.Type, cfg.RefrigeratedType)
		if refrigerated == perishable {
			eligible = append(eligible, v)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleVehicle
	}
	return eligible, nil
}
