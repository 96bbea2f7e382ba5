package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Пакет unit-тестов для internal/mask.
//
// Покрытие (табличные тесты):
//   - Name: первая руна + звёздочки, односимвольные и Unicode-имена,
//     пустая строка.
//   - Phone: длина ≤4 без изменений, длинные номера с хвостом "****".

// TestName_Table — табличные тесты маскирования имени.
func TestName_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "korean_three_runes", in: "홍길동", want: "홍**"},
		{name: "korean_two_runes", in: "김수", want: "김*"},
		{name: "single_rune", in: "김", want: "김"},
		{name: "empty", in: "", want: ""},
		{name: "latin", in: "John", want: "J***"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Name(tt.in))
		})
	}
}

// TestPhone_Table — табличные тесты маскирования телефона.
// Короткие значения (≤4 рун) возвращаются как есть.
func TestPhone_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "eleven_digits", in: "01012345678", want: "0101234****"},
		{name: "ten_digits", in: "0101234567", want: "010123****"},
		{name: "five_digits", in: "12345", want: "1****"},
		{name: "four_digits_unchanged", in: "1234", want: "1234"},
		{name: "three_digits_unchanged", in: "123", want: "123"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Phone(tt.in))
		})
	}
}
