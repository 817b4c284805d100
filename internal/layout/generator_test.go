package layout

import (
	"fmt"
	"testing"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_A320Defaults(t *testing.T) {
	layouts, err := Generate("A320", 180, nil, domain.DefaultConfig())
	require.NoError(t, err)

	// 8% first, 22% business, 10% restricted, remainder economy
	assert.Len(t, layouts[domain.ClassFirst], 14)
	assert.Len(t, layouts[domain.ClassBusiness], 39)
	assert.Len(t, layouts[domain.ClassRestricted], 18)
	assert.Len(t, layouts[domain.ClassEconomy], 109)

	total := 0
	for _, codes := range layouts {
		total += len(codes)
	}
	assert.Equal(t, 180, total)

	// 6 seats per row, letters A-F
	assert.Equal(t, "1A", layouts[domain.ClassFirst][0])
	assert.Equal(t, "1F", layouts[domain.ClassFirst][5])
	assert.Equal(t, "3B", layouts[domain.ClassFirst][13])
}

func TestGenerate_RowNumberingContinuousAcrossClasses(t *testing.T) {
	layouts, err := Generate("A320", 180, nil, domain.DefaultConfig())
	require.NoError(t, err)

	// first ends mid-row 3; business starts on a fresh row 4
	assert.Equal(t, "4A", layouts[domain.ClassBusiness][0])
	// business: 39 seats over rows 4-10
	assert.Equal(t, "10C", layouts[domain.ClassBusiness][38])
	assert.Equal(t, "11A", layouts[domain.ClassRestricted][0])
	assert.Equal(t, "14A", layouts[domain.ClassEconomy][0])
	assert.Equal(t, "32A", layouts[domain.ClassEconomy][108])
}

func TestGenerate_WideBodyAndRegionalFamilies(t *testing.T) {
	defaults := domain.DefaultConfig()

	wide, err := Generate("B777-300ER", 300, nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, "1H", wide[domain.ClassFirst][7], "wide-body rows hold 8 seats A-H")

	regional, err := Generate("ATR72", 70, nil, defaults)
	require.NoError(t, err)
	assert.Empty(t, regional[domain.ClassFirst], "regional aircraft carry no first class")
	assert.Equal(t, "1D", regional[domain.ClassBusiness][3], "regional rows hold 4 seats A-D")
}

func TestGenerate_UnknownModelFallsBack(t *testing.T) {
	layouts, err := Generate("TU154", 120, nil, domain.DefaultConfig())
	require.NoError(t, err)

	total := 0
	for _, codes := range layouts {
		total += len(codes)
	}
	assert.Equal(t, 120, total, "unknown model uses the narrow-body defaults")
}

func TestGenerate_CustomDistribution(t *testing.T) {
	dist := Distribution{
		domain.ClassBusiness: 0.5, // fraction of capacity
		domain.ClassEconomy:  40,  // absolute count
	}
	layouts, err := Generate("A320", 100, dist, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, layouts[domain.ClassBusiness], 50)
	assert.Len(t, layouts[domain.ClassEconomy], 40)
	assert.Empty(t, layouts[domain.ClassFirst], "classes absent from a custom distribution get zero seats")
	assert.Empty(t, layouts[domain.ClassRestricted])
}

func TestGenerate_OverCapacityScalesDown(t *testing.T) {
	dist := Distribution{
		domain.ClassBusiness: 120,
		domain.ClassEconomy:  120,
	}
	layouts, err := Generate("A320", 180, dist, domain.DefaultConfig())
	require.NoError(t, err)

	// 240 requested seats scaled to 180: 120*180/240 = 90 each
	assert.Len(t, layouts[domain.ClassBusiness], 90)
	assert.Len(t, layouts[domain.ClassEconomy], 90)
}

func TestGenerate_FloorRoundingMayLoseSeats(t *testing.T) {
	dist := Distribution{
		domain.ClassBusiness: 0.333,
		domain.ClassEconomy:  0.333,
	}
	layouts, err := Generate("A320", 10, dist, domain.DefaultConfig())
	require.NoError(t, err)

	// floor(3.33) twice: 6 seats from a capacity of 10, loss accepted
	assert.Len(t, layouts[domain.ClassBusiness], 3)
	assert.Len(t, layouts[domain.ClassEconomy], 3)
}

func TestGenerate_SeatCodesUniqueWithinClass(t *testing.T) {
	layouts, err := Generate("A380", 500, nil, domain.DefaultConfig())
	require.NoError(t, err)

	for class, codes := range layouts {
		seen := make(map[string]bool, len(codes))
		for _, code := range codes {
			require.False(t, seen[code], fmt.Sprintf("duplicate %s in %s", code, class))
			seen[code] = true
		}
	}
}

func TestGenerate_Validation(t *testing.T) {
	defaults := domain.DefaultConfig()

	_, err := Generate("A320", 0, nil, defaults)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = Generate("A320", 100, Distribution{domain.ClassEconomy: -5}, defaults)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
