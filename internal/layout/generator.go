// Package layout generates per-class seat code lists for a flight from the
// aircraft model and capacity. Generation is pure: persistence belongs to
// the seat pool repository.
package layout

import (
	"fmt"
	"math"

	"github.com/Domenick1991/airinventory/internal/domain"
)

// Distribution overrides the default per-class split. Values below 1 are
// fractions of capacity, values of 1 and above are absolute seat counts.
// Classes absent from the map get zero seats.
type Distribution map[domain.Class]float64

// Generate builds the ordered seat-code list for every class.
//
// Row numbering is continuous across classes in cabin order; each class
// starts on a fresh row and its codes are produced row-major, truncated at
// the class quota. With fractional shares the floor rounding may generate
// slightly fewer seats than capacity; the loss is accepted, not corrected.
func Generate(model string, capacity int, custom Distribution, defaults domain.Defaults) (map[domain.Class][]string, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", domain.ErrValidation, capacity)
	}

	fam := defaults.LayoutFor(model)

	counts, err := classCounts(capacity, custom, fam)
	if err != nil {
		return nil, err
	}

	layouts := make(map[domain.Class][]string, len(counts))
	row := 1
	for _, class := range domain.Classes() {
		n := counts[class]
		codes := make([]string, 0, n)
		for len(codes) < n {
			for _, letter := range fam.Letters {
				if len(codes) == n {
					break
				}
				codes = append(codes, fmt.Sprintf("%d%s", row, letter))
			}
			row++
		}
		layouts[class] = codes
	}
	return layouts, nil
}

func classCounts(capacity int, custom Distribution, fam domain.FamilyLayout) (map[domain.Class]int, error) {
	counts := make(map[domain.Class]int, 4)

	if custom == nil {
		// Default split: floor the configured shares, economy takes the rest.
		used := 0
		for _, class := range domain.Classes() {
			if class == domain.ClassEconomy {
				continue
			}
			n := int(math.Floor(fam.Shares[class] * float64(capacity)))
			counts[class] = n
			used += n
		}
		counts[domain.ClassEconomy] = capacity - used
		return counts, nil
	}

	total := 0
	for _, class := range domain.Classes() {
		v, ok := custom[class]
		if !ok {
			counts[class] = 0
			continue
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative seat count for %s class", domain.ErrValidation, class)
		}
		n := int(v)
		if v < 1 {
			n = int(math.Floor(v * float64(capacity)))
		}
		counts[class] = n
		total += n
	}

	if total > capacity {
		// Over-subscribed: scale every class down proportionally, flooring.
		for class, n := range counts {
			counts[class] = n * capacity / total
		}
	}
	return counts, nil
}
