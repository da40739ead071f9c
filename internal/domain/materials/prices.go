package materials

import "github.com/shopspring/decimal"

// PriceTable — цена за единицу (€/кг для штукатурки, €/л для краски).
type PriceTable map[string]decimal.Decimal

// Price возвращает цену; для неизвестного материала — 0.
func (p PriceTable) Price(name string) decimal.Decimal {
	if v, ok := p[name]; ok {
		return v
	}
	return decimal.Zero
}

// WithOverrides возвращает копию таблицы с ценами из конфига поверх.
func (p PriceTable) WithOverrides(overrides map[string]float64) PriceTable {
	out := make(PriceTable, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

func DefaultPrices() PriceTable {
	return PriceTable{
		Sand:   decimal.RequireFromString("0.1"),
		Cement: decimal.RequireFromString("0.2"),
		Lime:   decimal.RequireFromString("0.15"),

		"red":    decimal.RequireFromString("5.0"),
		"black":  decimal.RequireFromString("5.0"),
		"blue":   decimal.RequireFromString("4.5"),
		"green":  decimal.RequireFromString("4.0"),
		"yellow": decimal.RequireFromString("3.5"),
		"white":  decimal.RequireFromString("3.0"),
		"grey":   decimal.RequireFromString("3.5"),
	}
}

// DefaultPalette — цвета для расчёта краски гостя.
func DefaultPalette() []string {
	return []string{"white", "grey", "red", "green", "blue"}
}
