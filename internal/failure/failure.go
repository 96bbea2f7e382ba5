// failure стандартизирует ошибки пользовательских потоков фронта.
//
// Таксономия (§ политика обработки ошибок):
//   - Network — запрос не удалось выполнить (DNS, таймаут, обрыв);
//   - API — не-2xx с сообщением сервера (или generic-заглушкой);
//   - Validation — клиентская предпроверка не прошла, сети не было;
//   - Auth — сервер сообщил о несовпадении учётных данных.
//
// Каждый поток ловит ошибку на своей границе и превращает её в
// уведомление пользователю; ничего не глотается молча и ничего
// не ретраится автоматически.
package failure

import "errors"

// Kind — машиночитаемая категория ошибки.
type Kind string

const (
	Network    Kind = "network"
	API        Kind = "api"
	Validation Kind = "validation"
	Auth       Kind = "auth"
)

// generic — сообщение по умолчанию, когда сервер не прислал поле error.
const generic = "요청 처리 중 오류가 발생했습니다."

// Failure — типизированная ошибка потока.
// Message — безопасное человекочитаемое сообщение для уведомления.
// Status — HTTP-статус ответа, если он был (0 для локальных ошибок).
type Failure struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return string(f.Kind) + ": " + f.Message + ": " + f.Err.Error()
	}

	return string(f.Kind) + ": " + f.Message
}

func (f *Failure) Unwrap() error { return f.Err }

// New — локальная ошибка без нижележащей причины.
func New(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Message: msg}
}

// Networkf оборачивает транспортную ошибку.
func Networkf(err error, msg string) *Failure {
	if msg == "" {
		msg = generic
	}

	return &Failure{Kind: Network, Message: msg, Err: err}
}

// FromAPI строит ошибку из не-2xx ответа.
// serverMsg — поле error из тела; при его отсутствии подставляется
// generic-сообщение, чтобы ошибка всегда была отображаемой.
func FromAPI(status int, serverMsg string) *Failure {
	msg := serverMsg
	if msg == "" {
		msg = generic
	}

	return &Failure{Kind: API, Message: msg, Status: status}
}

// KindOf возвращает категорию ошибки, если это Failure.
func KindOf(err error) (Kind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}

	return "", false
}

// IsKind — err является Failure указанной категории.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Message — пользовательское сообщение для уведомления.
// Для не-Failure ошибок отдаёт generic, а не внутренние детали.
func Message(err error) string {
	var f *Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}

	return generic
}
