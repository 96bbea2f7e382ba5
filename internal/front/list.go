package front

import (
	"context"
	"log/slog"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/paging"
	"github.com/hanstar/webfront/internal/view"
)

// FetchPage — единая точка входа гейтированного спискового потока:
// загружает страницу ресурса kind и монтирует её представление.
// Для админ-ресурсов пустой credential отклоняется локально,
// без сетевого вызова.
func (f *Front) FetchPage(ctx context.Context, kind ResourceKind, page int, credential string) error {
	switch kind {
	case KindInquiry:
		return f.OpenInquiryList(ctx, page)
	case KindAdminInquiry:
		return f.OpenAdminInquiries(ctx, credential, page)
	case KindAdminMaterial:
		return f.OpenAdminMaterials(ctx, credential, page)
	default:
		return f.fail(ctx, "front.list.FetchPage",
			failure.New(failure.Validation, "알 수 없는 목록 종류입니다."))
	}
}

// OpenInquiryList загружает и монтирует страницу публичного списка
// обращений. Повторный вызов (смена страницы, переоткрытие из меню)
// заменяет представление; опоздавший ответ перекрытого запроса
// отбрасывается по номеру последовательности сессии.
func (f *Front) OpenInquiryList(ctx context.Context, page int) error {
	const op = "front.list.OpenInquiryList"

	page = paging.Normalize(page)
	sess := f.session(view.DialogInquiryList)
	seq := sess.Next()

	lg := logctx.From(ctx)
	lg.Info("inquiry_list_request", slog.String("op", op), slog.Int("page", page))

	listPage, err := f.api.InquiryList(ctx, page)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	if !sess.Latest(seq) {
		lg.Debug("stale_response_discarded", slog.String("op", op), slog.Uint64("seq", seq))
		return nil
	}

	if cp := listPage.Pagination.CurrentPage; cp > 0 {
		page = cp // бэкенд мог обрезать страницу по верхней границе
	}
	sess.SetPage(page)
	sess.ClearRetired()

	vm := buildInquiryListVM(listPage, sess)

	f.mu.Lock()
	f.lastInquiryList = &vm
	f.mu.Unlock()

	lg.Info("inquiry_list_ok",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("items", len(vm.Items)),
	)

	return f.mountGated(ctx, view.DialogInquiryList, vm, sess)
}

// OpenAdminInquiriesGate монтирует диалог «답변등록» в состоянии
// ввода пароля; список не загружается до явного запроса.
func (f *Front) OpenAdminInquiriesGate(ctx context.Context) error {
	f.resetSession(view.DialogAdminInquiries)
	return f.mount(ctx, view.DialogAdminInquiries, AdminInquiriesVM{})
}

// OpenAdminInquiries загружает страницу административного списка
// обращений. Учётные данные передаются явно при каждом вызове
// и нигде не сохраняются.
func (f *Front) OpenAdminInquiries(ctx context.Context, credential string, page int) error {
	const op = "front.list.OpenAdminInquiries"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}

	page = paging.Normalize(page)
	sess := f.session(view.DialogAdminInquiries)
	seq := sess.Next()

	lg := logctx.From(ctx)
	lg.Info("admin_inquiry_list_request", slog.String("op", op), slog.Int("page", page))

	listPage, err := f.api.AdminInquiryList(ctx, credential, page)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	if !sess.Latest(seq) {
		lg.Debug("stale_response_discarded", slog.String("op", op), slog.Uint64("seq", seq))
		return nil
	}

	if cp := listPage.Pagination.CurrentPage; cp > 0 {
		page = cp
	}
	sess.SetPage(page)

	lg.Info("admin_inquiry_list_ok",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("items", len(listPage.Items)),
	)

	return f.mountGated(ctx, view.DialogAdminInquiries, buildAdminInquiriesVM(listPage), sess)
}

// OpenAdminMaterialsGate монтирует диалог «자료등록» в состоянии
// ввода пароля.
func (f *Front) OpenAdminMaterialsGate(ctx context.Context) error {
	f.resetSession(view.DialogAdminMaterials)
	return f.mount(ctx, view.DialogAdminMaterials, AdminMaterialsVM{})
}

// OpenAdminMaterials загружает административный список материалов.
// Бэкенд отдаёт список целиком, пагинация выполняется на клиенте
// с тем же размером страницы, что у серверных списков.
func (f *Front) OpenAdminMaterials(ctx context.Context, credential string, page int) error {
	const op = "front.list.OpenAdminMaterials"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}

	page = paging.Normalize(page)
	sess := f.session(view.DialogAdminMaterials)
	seq := sess.Next()

	lg := logctx.From(ctx)
	lg.Info("admin_materials_request", slog.String("op", op), slog.Int("page", page))

	items, err := f.api.AdminMaterials(ctx)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	if !sess.Latest(seq) {
		lg.Debug("stale_response_discarded", slog.String("op", op), slog.Uint64("seq", seq))
		return nil
	}

	listPage := paging.Slice(items, page, adminPerPage)
	sess.SetPage(listPage.Pagination.CurrentPage)

	lg.Info("admin_materials_ok",
		slog.String("op", op),
		slog.Int("page", listPage.Pagination.CurrentPage),
		slog.Int("items", len(listPage.Items)),
	)

	return f.mountGated(ctx, view.DialogAdminMaterials, buildAdminMaterialsVM(listPage), sess)
}
