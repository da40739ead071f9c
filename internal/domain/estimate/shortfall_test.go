package estimate

import (
	"testing"

	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestShortfall_PlasterCoarse10(t *testing.T) {
	res := Shortfall(Plaster(10, ModeCoarse), materials.Inventory{"cement": 10, "sand": 5}, materials.DefaultPrices())

	assert.Equal(t, map[string]int{"cement": 0, "lime": 10, "sand": 15}, res.Missing())
	costs := res.Costs()
	assert.True(t, costs["cement"].IsZero())
	assert.True(t, dec("1.5").Equal(costs["lime"]), costs["lime"].String())
	assert.True(t, dec("1.5").Equal(costs["sand"]), costs["sand"].String())
	assert.True(t, dec("3.0").Equal(res.Total), res.Total.String())
}

func TestShortfall_Fine25NoInventory(t *testing.T) {
	res := Shortfall(Plaster(25, ModeFine), nil, materials.DefaultPrices())

	assert.Equal(t, map[string]int{"cement": 12, "lime": 12, "sand": 37}, res.Missing())
	assert.True(t, dec("7.9").Equal(res.Total), res.Total.String())
}

func TestShortfall_Paint45(t *testing.T) {
	res := Shortfall(Paint(45, []string{"white", "red"}), materials.Inventory{"white": 1}, materials.DefaultPrices())

	assert.Equal(t, map[string]int{"red": 4, "white": 3}, res.Missing())
	assert.True(t, dec("29").Equal(res.Total), res.Total.String())
}

func TestShortfall_SurplusAndUnknownPrice(t *testing.T) {
	res := Shortfall(
		Requirements{"cement": 5, "purple": 3},
		materials.Inventory{"cement": 50},
		materials.DefaultPrices(),
	)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, "cement", res.Lines[0].Name)
	assert.Equal(t, 0, res.Lines[0].Missing)
	assert.Equal(t, materials.UnitKg, res.Lines[0].Unit)
	assert.Equal(t, "purple", res.Lines[1].Name)
	assert.Equal(t, 3, res.Lines[1].Missing)
	assert.Equal(t, materials.UnitLiter, res.Lines[1].Unit)
	assert.True(t, res.Lines[1].Cost.IsZero())
	assert.True(t, res.Total.IsZero())
}

func TestShortfall_TotalIsSumOfCosts(t *testing.T) {
	res := Shortfall(Plaster(33.3, ModeCoarse), materials.Inventory{"sand": 7}, materials.DefaultPrices())

	sum := decimal.Zero
	for _, l := range res.Lines {
		assert.GreaterOrEqual(t, l.Missing, 0)
		sum = sum.Add(l.Cost)
	}
	assert.True(t, sum.Equal(res.Total))
}
