package dialog

type State string

const (
	StateIdle State = "idle"

	// Штукатурка: площадь, затем режим кнопкой.
	StatePlasterArea State = "plaster_area"
	StatePlasterMode State = "plaster_mode"

	// Покраска: площадь, расчёт по палитре по умолчанию.
	StatePaintArea State = "paint_area"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}
