// Package apperr классифицирует ошибки и превращает их в текст для пользователя.
package apperr

import (
	"errors"
)

type Kind uint8

const (
	// KindRemote — сбой удалённой операции (хранилище, сеть).
	KindRemote Kind = iota
	KindValidation
	KindAuth
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	}
	return "remote"
}

// Error — ошибка с видом и сообщением, которое можно показать пользователю.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, msg string) *Error { return &Error{kind: kind, msg: msg} }

// Invalid — ошибка валидации ввода.
func Invalid(msg string) *Error { return New(KindValidation, msg) }

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }

type kinded interface {
	error
	Kind() Kind
}

// KindOf определяет вид ошибки; всё неклассифицированное считается удалённым сбоем.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindRemote
}

// Message возвращает текст для пользователя.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var k kinded
	if errors.As(err, &k) && k.Kind() != KindRemote {
		return k.Error()
	}
	return "remote operation failed: " + err.Error()
}
