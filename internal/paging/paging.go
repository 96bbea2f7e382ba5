// paging — вычисление состояния пагинации для списковых диалогов.
//
// Окно страниц скользящее: current-2 .. current+2, обрезанное по
// [1, total]. Кнопки «이전»/«다음» появляются только когда есть куда
// листать. При total_pages <= 1 управление пагинацией не рендерится.
package paging

import (
	"fmt"

	"github.com/hanstar/webfront/internal/models"
)

// windowRadius — сколько номеров страниц показываем по обе стороны
// от текущей.
const windowRadius = 2

// Normalize приводит номер страницы к допустимому значению (>= 1).
func Normalize(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// Window возвращает границы окна кнопок [start, end] для текущей
// страницы current при total страницах всего.
func Window(current, total int) (start, end int) {
	start = current - windowRadius
	if start < 1 {
		start = 1
	}

	end = current + windowRadius
	if end > total {
		end = total
	}

	return start, end
}

// Controls — готовое к рендеру состояние пагинации.
// PrevPage/NextPage — целевые страницы кнопок «이전»/«다음»,
// валидны только при соответствующем флаге.
type Controls struct {
	Prev     bool
	Next     bool
	PrevPage int
	NextPage int
	Pages    []int
	Active   int
	Label    string
}

// Build собирает Controls из PageInfo.
// Возвращает nil, когда пагинацию показывать не нужно: пустой список
// (независимо от total_pages) или единственная страница.
func Build(p models.PageInfo) *Controls {
	if p.TotalItems == 0 || p.TotalPages <= 1 {
		return nil
	}

	start, end := Window(p.CurrentPage, p.TotalPages)
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return &Controls{
		Prev:     p.CurrentPage > 1,
		Next:     p.CurrentPage < p.TotalPages,
		PrevPage: p.CurrentPage - 1,
		NextPage: p.CurrentPage + 1,
		Pages:    pages,
		Active:   p.CurrentPage,
		Label:    RangeLabel(p),
	}
}

// RangeLabel — подпись «총 N개 중 a-b번째» под списком.
func RangeLabel(p models.PageInfo) string {
	first := (p.CurrentPage-1)*p.PerPage + 1
	last := p.CurrentPage * p.PerPage
	if last > p.TotalItems {
		last = p.TotalItems
	}
	if first > last {
		first = last
	}

	return fmt.Sprintf("총 %d개 중 %d-%d번째", p.TotalItems, first, last)
}

// Slice режет полный список на страницу page размером perPage.
// Используется для ресурсов, которые бэкенд отдаёт целиком
// (административный список материалов): PageInfo собирается на клиенте
// по тем же инвариантам, что и серверная пагинация.
func Slice[T any](items []T, page, perPage int) models.ListPage[T] {
	page = Normalize(page)
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if total == 0 {
		return models.ListPage[T]{
			Items: []T{},
			Pagination: models.PageInfo{
				CurrentPage: 1,
				TotalPages:  0,
				TotalItems:  0,
				PerPage:     perPage,
			},
		}
	}

	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * perPage
	hi := lo + perPage
	if hi > total {
		hi = total
	}

	return models.ListPage[T]{
		Items: items[lo:hi],
		Pagination: models.PageInfo{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			PerPage:     perPage,
		},
	}
}
