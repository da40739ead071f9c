package inventory

import (
	"github.com/Spok95/project-assistant/internal/domain/materials"
)

// Collection — документы остатков, id документа = uid пользователя.
const Collection = "materials"

// Snapshot — полный документ для перезаписи: материалы для штукатурки
// присутствуют всегда (отсутствующие = 0), плюс все краски.
func Snapshot(inv materials.Inventory) materials.Inventory {
	out := inv.Paints()
	for _, name := range materials.PlasterNames {
		out[name] = inv.Qty(name)
	}
	return out
}
