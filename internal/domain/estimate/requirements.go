package estimate

import (
	"math"
	"strconv"
	"strings"

	"github.com/Spok95/project-assistant/internal/domain/materials"
)

type PlasterMode string

const (
	ModeUnknown PlasterMode = ""
	ModeCoarse  PlasterMode = "coarse"
	ModeFine    PlasterMode = "fine"
)

// PaintCoverage — сколько м² покрывает литр краски.
const PaintCoverage = 10.0

// MaxArea — наибольшая принимаемая площадь, м²; больше считается неверным вводом.
const MaxArea = 1e9

// Requirements — сколько нужно каждого материала (целые, усечение к нулю).
type Requirements map[string]int

type coefficients struct {
	sand, cement, lime float64
}

var plasterCoefficients = map[PlasterMode]coefficients{
	ModeCoarse: {sand: 2.0, cement: 1.0, lime: 1.0},
	ModeFine:   {sand: 1.5, cement: 0.5, lime: 0.5},
}

func ParseMode(s string) PlasterMode {
	switch PlasterMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCoarse:
		return ModeCoarse
	case ModeFine:
		return ModeFine
	}
	return ModeUnknown
}

// ParseArea превращает ввод пользователя в площадь; нечисловое, NaN/Inf, <= 0
// и больше MaxArea дают 0.
func ParseArea(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return sanitizeArea(v)
}

func sanitizeArea(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxArea {
		return 0
	}
	return v
}

// Plaster считает песок/цемент/известь на площадь. Неизвестный режим — пустой результат.
func Plaster(area float64, mode PlasterMode) Requirements {
	c, ok := plasterCoefficients[mode]
	if !ok {
		return Requirements{}
	}
	area = sanitizeArea(area)
	return Requirements{
		materials.Sand:   int(area * c.sand),
		materials.Cement: int(area * c.cement),
		materials.Lime:   int(area * c.lime),
	}
}

// Paint — одинаковое количество литров floor(area/10) на каждый цвет, от цвета не зависит.
func Paint(area float64, colors []string) Requirements {
	liters := int(sanitizeArea(area) / PaintCoverage)
	out := make(Requirements, len(colors))
	for _, c := range colors {
		out[c] = liters
	}
	return out
}
