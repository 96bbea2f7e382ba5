// mask — необратимое частичное маскирование ПДн для публичных списков.
//
// Применяется только к публичному списку обращений: административные
// представления показывают данные как есть.
package mask

import "strings"

// Name оставляет первую руну имени, остальные заменяет на '*'
// (по одной на руну). Пустое имя — пустой результат.
func Name(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	return string(r[0]) + strings.Repeat("*", len(r)-1)
}

// Phone заменяет последние четыре знака номера на "****".
// Номера длиной <= 4 показываются как есть — наблюдаемое поведение
// исходной системы, сохранено намеренно.
func Phone(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return s
	}

	return string(r[:len(r)-4]) + "****"
}
