// Package eligibility validates class-restricted bookings against passenger
// attributes.
package eligibility

import (
	"strings"

	"github.com/Domenick1991/airinventory/internal/domain"
)

type Policy struct {
	requiredGender string
}

func NewPolicy(defaults domain.Defaults) Policy {
	return Policy{requiredGender: defaults.RestrictedGender}
}

// ClassRequiresEligibility is true only for the restricted class.
func (p Policy) ClassRequiresEligibility(class domain.Class) bool {
	return class == domain.ClassRestricted
}

// CheckEligibility reports whether a passenger with the given gender
// attribute may book the class. A missing attribute fails closed.
func (p Policy) CheckEligibility(class domain.Class, gender string) bool {
	if !p.ClassRequiresEligibility(class) {
		return true
	}
	if gender == "" {
		return false
	}
	return strings.EqualFold(gender, p.requiredGender)
}
