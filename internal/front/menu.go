package front

import (
	"context"
	"log/slog"

	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
)

// MenuKey — стабильный ключ пункта меню. Диспетчеризация действий
// идёт по ключам, а не по отображаемым подписям: подписи можно
// локализовать, не ломая поведение.
type MenuKey struct {
	Section string
	Item    string
}

// keyByLabel переводит пару подписей (раздел, подпункт) бэкенда
// в стабильный ключ. Неизвестные подписи остаются без действия.
var keyByLabel = map[[2]string]MenuKey{
	{"한스타소개", "회사소개"}:   {Section: "about", Item: "company_intro"},
	{"한스타소개", "회사연혁"}:   {Section: "about", Item: "company_history"},
	{"CONTACT", "연락처"}:    {Section: "contact", Item: "info"},
	{"CONTACT", "찾아오시는길"}: {Section: "contact", Item: "directions"},
	{"문의및답변", "문의하기"}:   {Section: "inquiry", Item: "new"},
	{"문의및답변", "문의답변"}:   {Section: "inquiry", Item: "list"},
	{"문의및답변", "답변등록"}:   {Section: "inquiry", Item: "admin"},
	{"자료배포", "자료받기"}:    {Section: "materials", Item: "list"},
	{"자료배포", "자료등록"}:    {Section: "materials", Item: "admin"},
}

// LoadMenu загружает навигацию с бэкенда. Единственный поток
// с запроектированной деградацией: при любой ошибке возвращается
// статичное меню по умолчанию, навигация не остаётся пустой.
func (f *Front) LoadMenu(ctx context.Context) []models.MenuSection {
	const op = "front.menu.LoadMenu"

	sections, err := f.api.Menu(ctx)
	if err != nil || len(sections) == 0 {
		if err != nil {
			logctx.From(ctx).Warn("menu_load_fallback",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}

		return DefaultMenu()
	}

	return sections
}

// DefaultMenu — статичное меню на случай недоступности бэкенда.
func DefaultMenu() []models.MenuSection {
	return []models.MenuSection{
		{Main: "HOME", Sub: []string{}},
		{Main: "ABOUT", Sub: []string{"회사소개", "연혁", "조직도"}},
		{Main: "SERVICES", Sub: []string{"서비스1", "서비스2", "서비스3"}},
		{Main: "CONTACT", Sub: []string{"연락처", "찾아오시는길"}},
		{Main: "문의및답변", Sub: []string{"문의하기", "문의답변"}},
		{Main: "자료배포", Sub: []string{"무역자료", "운송자료", "법규자료"}},
	}
}

// handlers — таблица действий по стабильным ключам меню.
func (f *Front) handlers() map[MenuKey]func(context.Context) error {
	return map[MenuKey]func(context.Context) error{
		{Section: "about", Item: "company_intro"}:   f.OpenCompanyIntro,
		{Section: "about", Item: "company_history"}: f.OpenCompanyHistory,
		{Section: "contact", Item: "info"}:          f.OpenContact,
		{Section: "contact", Item: "directions"}:    f.OpenDirections,
		{Section: "inquiry", Item: "new"}:           f.OpenInquiryForm,
		{Section: "inquiry", Item: "list"}: func(ctx context.Context) error {
			return f.OpenInquiryList(ctx, 1)
		},
		{Section: "inquiry", Item: "admin"}:   f.OpenAdminInquiriesGate,
		{Section: "materials", Item: "list"}:  f.OpenMaterials,
		{Section: "materials", Item: "admin"}: f.OpenAdminMaterialsGate,
	}
}

// HandleMenuSelect обрабатывает выбор подпункта меню по подписям.
// Неизвестная пара подписей — no-op (как и в исходной навигации).
func (f *Front) HandleMenuSelect(ctx context.Context, section, item string) error {
	key, ok := keyByLabel[[2]string{section, item}]
	if !ok {
		logctx.From(ctx).Debug("menu_select_unmapped",
			slog.String("section", section),
			slog.String("item", item),
		)

		return nil
	}

	h, ok := f.handlers()[key]
	if !ok {
		return nil
	}

	return h(ctx)
}
