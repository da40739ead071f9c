package materials

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLiter Unit = "L"
)

// Материалы для штукатурки (кг). Всё остальное в инвентаре считается краской (литры).
const (
	Sand   = "sand"
	Cement = "cement"
	Lime   = "lime"
)

// PlasterNames — порядок отображения материалов для штукатурки.
var PlasterNames = []string{Cement, Sand, Lime}

func IsPlaster(name string) bool {
	switch name {
	case Sand, Cement, Lime:
		return true
	}
	return false
}

func UnitOf(name string) Unit {
	if IsPlaster(name) {
		return UnitKg
	}
	return UnitLiter
}

type MaterialQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Fields — сырое содержимое документа хранилища.
type Fields = map[string]any

// Inventory — остатки пользователя: имя материала/краски -> количество (>= 0).
type Inventory map[string]int

// Qty возвращает остаток; отсутствующий материал = 0.
func (inv Inventory) Qty(name string) int {
	if inv == nil {
		return 0
	}
	return inv[name]
}

// Paints возвращает остатки красок (все ключи, кроме материалов для штукатурки).
func (inv Inventory) Paints() Inventory {
	out := Inventory{}
	for k, v := range inv {
		if !IsPlaster(k) {
			out[k] = v
		}
	}
	return out
}

// Names возвращает отсортированные ключи.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for k := range inv {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (inv Inventory) Items() []MaterialQuantity {
	out := make([]MaterialQuantity, 0, len(inv))
	for _, name := range inv.Names() {
		out = append(out, MaterialQuantity{Name: name, Quantity: inv[name]})
	}
	return out
}

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

func (inv Inventory) Fields() Fields {
	out := make(Fields, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// InventoryFromFields разбирает документ хранилища. Числа могут прийти как
// int, int64, float64 (JSON), json.Number или строка; мусор и отрицательные
// значения превращаются в 0.
func InventoryFromFields(f Fields) Inventory {
	inv := make(Inventory, len(f))
	for k, v := range f {
		inv[k] = toQuantity(v)
	}
	return inv
}

func toQuantity(v any) int {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int32:
		n = int(x)
	case int64:
		n = int(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		n = int(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			n = int(i)
		} else if f, err := x.Float64(); err == nil {
			n = int(f)
		}
	case string:
		n = ParseQuantity(x)
	}
	if n < 0 {
		return 0
	}
	return n
}

// ParseQuantity — целое из пользовательского ввода, иначе 0.
func ParseQuantity(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
