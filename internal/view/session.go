package view

import "sync"

// Session — эфемерное состояние одного открытого гейтированного
// диалога: текущая страница, «отставленные» строки и счётчик
// последовательности запросов.
//
// Жизненный цикл: создаётся при открытии диалога, мутирует при смене
// страницы/обновлении, уничтожается при закрытии. Открытие той же
// роли повторно заменяет сессию вместе с представлением.
//
// Счётчик последовательности защищает от гонки перекрывающихся
// запросов: ответ применяется к представлению только если его номер —
// последний выданный для этой роли; опоздавшие ответы отбрасываются.
type Session struct {
	mu      sync.Mutex
	page    int
	seq     uint64
	retired map[int64]bool
}

func NewSession() *Session {
	return &Session{page: 1, retired: make(map[int64]bool)}
}

// Page — текущая страница сессии.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page
}

// SetPage фиксирует страницу, на которой находится диалог.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = page
}

// Next выдаёт номер очередного запроса этой сессии.
func (s *Session) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return s.seq
}

// Latest — номер n всё ещё последний выданный.
func (s *Session) Latest(n uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return n == s.seq
}

// Retire помечает строку списка как «отставленную»: её форма ввода
// пароля закрыта после успешной разблокировки.
func (s *Session) Retire(rowID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.retired[rowID] = true
}

// ClearRetired сбрасывает отставленные строки — вызывается при каждой
// свежей загрузке страницы: новый рендер начинает с закрытых форм.
func (s *Session) ClearRetired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.retired = make(map[int64]bool)
}

// Retired — была ли строка отставлена в рамках этой сессии.
func (s *Session) Retired(rowID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.retired[rowID]
}
