package estimate

import (
	"sort"

	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/shopspring/decimal"
)

type Line struct {
	Name      string
	Unit      materials.Unit
	Required  int
	OnHand    int
	Missing   int
	UnitPrice decimal.Decimal
	Cost      decimal.Decimal
}

type Result struct {
	Lines []Line
	Total decimal.Decimal
}

// Costs возвращает стоимость недостающего по каждому материалу.
func (r Result) Costs() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.Lines))
	for _, l := range r.Lines {
		out[l.Name] = l.Cost
	}
	return out
}

// Missing возвращает дефицит по каждому материалу.
func (r Result) Missing() map[string]int {
	out := make(map[string]int, len(r.Lines))
	for _, l := range r.Lines {
		out[l.Name] = l.Missing
	}
	return out
}

// Shortfall: дефицит = max(0, нужно - есть), стоимость = дефицит * цена.
func Shortfall(required Requirements, onHand materials.Inventory, prices materials.PriceTable) Result {
	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	res := Result{Lines: make([]Line, 0, len(names)), Total: decimal.Zero}
	for _, name := range names {
		need := max(required[name], 0)
		have := onHand.Qty(name)
		missing := max(0, need-have)
		price := prices.Price(name)
		cost := price.Mul(decimal.NewFromInt(int64(missing)))

		res.Lines = append(res.Lines, Line{
			Name:      name,
			Unit:      materials.UnitOf(name),
			Required:  need,
			OnHand:    have,
			Missing:   missing,
			UnitPrice: price,
			Cost:      cost,
		})
		res.Total = res.Total.Add(cost)
	}
	return res
}
