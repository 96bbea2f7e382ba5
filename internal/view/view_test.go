package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Пакет unit-тестов для internal/view.
//
// Покрытие:
//   - Registry: синглтон по роли, порядок teardown-до-монтирования,
//     Close/Update;
//   - Session: счётчик последовательности, отставленные строки.

// TestRegistry_SingletonPerIdentity — повторное открытие той же роли
// заменяет представление, а не добавляет второе.
func TestRegistry_SingletonPerIdentity(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Open(DialogInquiryList, "first", nil)
	r.Open(DialogInquiryList, "second", nil)

	require.Len(t, r.Identities(), 1)

	h, ok := r.Mounted(DialogInquiryList)
	require.True(t, ok)
	require.Equal(t, "second", h.Content())
}

// TestRegistry_TeardownBeforeMount — teardown старого представления
// выполняется при замене, и только один раз.
func TestRegistry_TeardownBeforeMount(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	calls := 0
	r.Open(DialogMaterials, "old", func() { calls++ })
	require.Equal(t, 0, calls)

	r.Open(DialogMaterials, "new", nil)
	require.Equal(t, 1, calls)

	r.Close(DialogMaterials)
	require.Equal(t, 1, calls)
}

// TestRegistry_TeardownOrder — при цепочке замен teardown старых
// представлений выполняется в порядке их вытеснения.
func TestRegistry_TeardownOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	var order []string
	r.Open(DialogMaterials, "a", func() { order = append(order, "a") })
	r.Open(DialogMaterials, "b", func() { order = append(order, "b") })
	require.Equal(t, []string{"a"}, order)

	r.Close(DialogMaterials)
	require.Equal(t, []string{"a", "b"}, order)
}

// TestRegistry_Close — закрытие демонтирует представление и зовёт teardown.
func TestRegistry_Close(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	torn := false
	r.Open(DialogContact, "c", func() { torn = true })

	require.True(t, r.Close(DialogContact))
	require.True(t, torn)

	_, ok := r.Mounted(DialogContact)
	require.False(t, ok)
	require.False(t, r.Close(DialogContact))
}

// TestRegistry_Update — замена содержимого без демонтажа.
func TestRegistry_Update(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.False(t, r.Update(DialogInquiryList, "x"))

	torn := false
	r.Open(DialogInquiryList, "v1", func() { torn = true })
	require.True(t, r.Update(DialogInquiryList, "v2"))
	require.False(t, torn)

	h, _ := r.Mounted(DialogInquiryList)
	require.Equal(t, "v2", h.Content())
}

// TestSession_Sequence — последним выданным считается только
// последний номер.
func TestSession_Sequence(t *testing.T) {
	t.Parallel()

	s := NewSession()

	first := s.Next()
	second := s.Next()

	require.False(t, s.Latest(first))
	require.True(t, s.Latest(second))
}

// TestSession_Retired — отставленные строки переживают смену страницы
// только до ClearRetired.
func TestSession_Retired(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.Equal(t, 1, s.Page())

	s.Retire(42)
	require.True(t, s.Retired(42))
	require.False(t, s.Retired(7))

	s.SetPage(3)
	require.Equal(t, 3, s.Page())
	require.True(t, s.Retired(42))

	s.ClearRetired()
	require.False(t, s.Retired(42))
}
