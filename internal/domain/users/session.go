package users

import "sync"

// Session — текущий пользователь клиента с подпиской на изменения.
// Подписчик сразу получает текущее значение, затем каждое изменение
// (nil означает, что пользователь вышел).
type Session struct {
	// deliver упорядочивает вызовы колбэков: начальное значение и изменения
	// приходят подписчику в том порядке, в котором менялась сессия.
	deliver sync.Mutex
	mu      sync.Mutex
	current *User
	subs    map[int]func(*User)
	nextID  int
}

func NewSession() *Session {
	return &Session{subs: map[int]func(*User){}}
}

func (s *Session) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() *User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Subscribe регистрирует колбэк и возвращает функцию отписки.
// Отписка идемпотентна; после неё колбэк не вызывается.
// Колбэк может читать Current, но не должен входить или выходить.
func (s *Session) Subscribe(fn func(*User)) (unsubscribe func()) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	snapshot := s.currentLocked()
	s.mu.Unlock()

	fn(snapshot)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) set(u *User) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	if u != nil {
		cp := *u
		u = &cp
	}
	s.current = u
	fns := make([]func(*User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		if u == nil {
			fn(nil)
			continue
		}
		cp := *u
		fn(&cp)
	}
}
