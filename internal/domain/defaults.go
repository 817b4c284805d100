package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ModelFamily groups aircraft models that share a cabin cross-section.
type ModelFamily string

const (
	FamilyWideBody   ModelFamily = "wide-body"
	FamilyNarrowBody ModelFamily = "narrow-body"
	FamilyRegional   ModelFamily = "regional"
)

// FamilyLayout describes the cabin cross-section and the default split of
// capacity across classes for one model family. Economy has no share entry:
// it takes the remainder after the other classes are floor-rounded.
type FamilyLayout struct {
	SeatsPerRow int
	Letters     []string
	Shares      map[Class]float64
}

// Defaults is the single default-configuration record consulted for every
// fallback the core performs: unmatched aircraft models, missing flight
// multipliers and the restricted-class attribute requirement. Call sites
// never invent their own fallback values.
type Defaults struct {
	Families      map[ModelFamily]FamilyLayout
	ModelFamilies map[string]ModelFamily
	DefaultFamily ModelFamily
	Multipliers   map[Class]decimal.Decimal
	// RestrictedGender is the gender a passenger must have to book the
	// restricted class.
	RestrictedGender string
}

func DefaultConfig() Defaults {
	return Defaults{
		Families: map[ModelFamily]FamilyLayout{
			FamilyWideBody: {
				SeatsPerRow: 8,
				Letters:     []string{"A", "B", "C", "D", "E", "F", "G", "H"},
				Shares: map[Class]float64{
					ClassFirst:      0.10,
					ClassBusiness:   0.25,
					ClassRestricted: 0.10,
				},
			},
			FamilyNarrowBody: {
				SeatsPerRow: 6,
				Letters:     []string{"A", "B", "C", "D", "E", "F"},
				Shares: map[Class]float64{
					ClassFirst:      0.08,
					ClassBusiness:   0.22,
					ClassRestricted: 0.10,
				},
			},
			FamilyRegional: {
				SeatsPerRow: 4,
				Letters:     []string{"A", "B", "C", "D"},
				Shares: map[Class]float64{
					ClassBusiness:   0.20,
					ClassRestricted: 0.10,
				},
			},
		},
		ModelFamilies: map[string]ModelFamily{
			"A330": FamilyWideBody,
			"A340": FamilyWideBody,
			"A350": FamilyWideBody,
			"A380": FamilyWideBody,
			"B747": FamilyWideBody,
			"B767": FamilyWideBody,
			"B777": FamilyWideBody,
			"B787": FamilyWideBody,
			"A319": FamilyNarrowBody,
			"A320": FamilyNarrowBody,
			"A321": FamilyNarrowBody,
			"B737": FamilyNarrowBody,
			"B757": FamilyNarrowBody,
			"ATR42": FamilyRegional,
			"ATR72": FamilyRegional,
			"CRJ":   FamilyRegional,
			"DASH8": FamilyRegional,
			"E145":  FamilyRegional,
		},
		DefaultFamily: FamilyNarrowBody,
		Multipliers: map[Class]decimal.Decimal{
			ClassFirst:      decimal.NewFromFloat(3.0),
			ClassBusiness:   decimal.NewFromFloat(2.0),
			ClassRestricted: decimal.NewFromFloat(1.5),
			ClassEconomy:    decimal.NewFromFloat(1.0),
		},
		RestrictedGender: "female",
	}
}

// FamilyFor resolves an aircraft model to its family by longest-prefix match.
// Unrecognized models fall back to the default family instead of failing.
func (d Defaults) FamilyFor(model string) ModelFamily {
	model = strings.ToUpper(strings.TrimSpace(model))
	best := ""
	fam := d.DefaultFamily
	for prefix, f := range d.ModelFamilies {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
			fam = f
		}
	}
	return fam
}

// LayoutFor returns the cabin layout for a model, via its family.
func (d Defaults) LayoutFor(model string) FamilyLayout {
	return d.Families[d.FamilyFor(model)]
}

// MultiplierFor returns the default price multiplier for a class.
func (d Defaults) MultiplierFor(class Class) decimal.Decimal {
	if m, ok := d.Multipliers[class]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}
