package web

import "sync"

// noticeBuffer накапливает уведомления контроллера и отдаёт их
// в ответе на действие. Реализует front.Notifier.
type noticeBuffer struct {
	mu      sync.Mutex
	notices []string
}

func (b *noticeBuffer) Notify(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = append(b.notices, msg)
}

// Drain возвращает накопленные уведомления и очищает буфер.
func (b *noticeBuffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.notices
	b.notices = nil
	return out
}

// browserConfirm — подтверждение разрушительных действий на стороне
// браузера: к моменту запроса пользователь уже ответил на confirm(),
// неподтверждённые действия до сервера не доходят.
type browserConfirm struct{}

func (browserConfirm) Confirm(string) bool { return true }
