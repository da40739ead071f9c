package async

import (
	"context"
	"sync"
)

// Future — результат удалённой операции, который разрешается ровно один раз.
// Колбэки, зарегистрированные через Then, вызываются один раз: сразу, если
// результат уже есть, иначе — в момент разрешения. Done закрывается после
// того, как отработали колбэки, зарегистрированные до разрешения.
type Future[T any] struct {
	once     sync.Once
	done     chan struct{}
	mu       sync.Mutex
	resolved bool
	val      T
	err      error
	onOK     []func(T)
	onErr    []func(error)
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go запускает fn в отдельной горутине и возвращает её будущий результат.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		v, err := fn()
		f.resolve(v, err)
	}()
	return f
}

// Resolved возвращает уже разрешённый успешный Future.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v, nil)
	return f
}

// Failed возвращает уже разрешённый Future с ошибкой.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.resolve(zero, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.once.Do(func() {
		f.mu.Lock()
		f.val, f.err = v, err
		f.resolved = true
		onOK, onErr := f.onOK, f.onErr
		f.onOK, f.onErr = nil, nil
		f.mu.Unlock()

		defer close(f.done)
		if err != nil {
			for _, cb := range onErr {
				cb(err)
			}
			return
		}
		for _, cb := range onOK {
			cb(v)
		}
	})
}

// Then регистрирует колбэки завершения. Любой из них может быть nil.
func (f *Future[T]) Then(onOK func(T), onErr func(error)) *Future[T] {
	f.mu.Lock()
	if f.resolved {
		v, err := f.val, f.err
		f.mu.Unlock()
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
		} else if onOK != nil {
			onOK(v)
		}
		return f
	}
	if onOK != nil {
		f.onOK = append(f.onOK, onOK)
	}
	if onErr != nil {
		f.onErr = append(f.onErr, onErr)
	}
	f.mu.Unlock()
	return f
}

// Done закрывается, когда результат готов.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait блокируется до результата или до отмены ctx. Отмена ctx не отменяет
// саму операцию — она завершится и разрешит Future позже.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
