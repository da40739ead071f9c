package inventory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/async"
	"github.com/Spok95/project-assistant/internal/domain/materials"
)

// Editor — сессия редактирования остатков: текстовые поля, которые
// пользователь правит локально, и синхронизация с хранилищем.
// Результаты удалённых операций, пришедшие после Close, отбрасываются.
type Editor struct {
	repo *Repo
	uid  string

	mu     sync.Mutex
	closed bool
	texts  map[string]string
	errMsg string
}

func NewEditor(repo *Repo, uid string) *Editor {
	return &Editor{repo: repo, uid: uid, texts: map[string]string{}}
}

// Load читает документ и заполняет поля. Отсутствующий документ даёт
// пустые поля для цемента, песка и извести.
func (e *Editor) Load(ctx context.Context) *async.Future[materials.Inventory] {
	return async.Go(func() (materials.Inventory, error) {
		return e.repo.Get(ctx, e.uid)
	}).Then(func(inv materials.Inventory) {
		e.apply(func() {
			e.texts = map[string]string{}
			for name, qty := range Snapshot(inv) {
				e.texts[name] = strconv.Itoa(qty)
			}
			e.errMsg = ""
		})
	}, e.fail)
}

// SetText меняет поле локально, без обращения к хранилищу.
func (e *Editor) SetText(name, text string) {
	e.apply(func() { e.texts[name] = text })
}

// AddMaterial добавляет материал в локальный список сразу и записывает
// одно поле в хранилище. Ошибка ввода возвращается уже разрешённым Future.
func (e *Editor) AddMaterial(ctx context.Context, name, qtyText string) *async.Future[struct{}] {
	name = strings.TrimSpace(name)
	qty := materials.ParseQuantity(qtyText)
	if name == "" || qty <= 0 {
		err := apperr.Invalid("enter a material name and a positive quantity")
		e.fail(err)
		return async.Failed[struct{}](err)
	}

	e.apply(func() { e.texts[name] = strconv.Itoa(qty) })
	return async.Go(func() (struct{}, error) {
		return struct{}{}, e.repo.AddMaterial(ctx, e.uid, name, qty)
	}).Then(func(struct{}) {
		e.apply(func() { e.errMsg = "" })
	}, e.fail)
}

// SaveAll перезаписывает документ текущими значениями полей.
func (e *Editor) SaveAll(ctx context.Context) *async.Future[struct{}] {
	inv := e.Inventory()
	return async.Go(func() (struct{}, error) {
		return struct{}{}, e.repo.Save(ctx, e.uid, inv)
	}).Then(func(struct{}) {
		e.apply(func() { e.errMsg = "" })
	}, e.fail)
}

// Inventory разбирает текущие поля; нечисловой текст считается нулём.
func (e *Editor) Inventory() materials.Inventory {
	e.mu.Lock()
	defer e.mu.Unlock()
	inv := make(materials.Inventory, len(e.texts))
	for name, text := range e.texts {
		inv[name] = materials.ParseQuantity(text)
	}
	return inv
}

// Texts возвращает копию полей.
func (e *Editor) Texts() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.texts))
	for k, v := range e.texts {
		out[k] = v
	}
	return out
}

// Err — последнее сообщение об ошибке для пользователя.
func (e *Editor) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

func (e *Editor) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

func (e *Editor) apply(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	fn()
}

func (e *Editor) fail(err error) {
	e.apply(func() { e.errMsg = apperr.Message(err) })
}
