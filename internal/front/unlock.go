package front

import (
	"context"
	"log/slog"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/view"
)

// VerifyInquiry — разблокировка карточки обращения по паролю строки.
// Пустой пароль отклоняется локально. Неверный пароль и отсутствующая
// строка дают одно и то же сообщение: отличить «нет такой записи» от
// «не тот пароль» по ответу нельзя.
//
// После успеха строка «отставляется» в сессии списка и публичный
// список перерендеривается из последней готовой модели без повторной
// загрузки с бэкенда.
func (f *Front) VerifyInquiry(ctx context.Context, rowID int64, password string) error {
	const op = "front.unlock.VerifyInquiry"

	if password == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "비밀번호를 입력해주세요."))
	}

	lg := logctx.From(ctx)
	lg.Info("inquiry_unlock_request", slog.String("op", op), slog.Int64("row_id", rowID))

	detail, err := f.api.VerifyInquiry(ctx, rowID, password)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	lg.Info("inquiry_unlock_ok", slog.String("op", op), slog.Int64("row_id", rowID))

	if err := f.mount(ctx, view.DialogInquiryDetail, *detail); err != nil {
		return err
	}

	f.retireRow(ctx, rowID)
	return nil
}

// retireRow помечает строку публичного списка отставленной и обновляет
// содержимое списка на месте. Список мог быть закрыт, пока шла
// проверка, тогда обновлять нечего.
func (f *Front) retireRow(ctx context.Context, rowID int64) {
	sess := f.session(view.DialogInquiryList)
	sess.Retire(rowID)

	f.mu.Lock()
	vm := f.lastInquiryList
	f.mu.Unlock()

	if vm == nil {
		return
	}

	refreshed := *vm
	refreshed.Items = make([]InquiryRowVM, len(vm.Items))
	copy(refreshed.Items, vm.Items)
	for i := range refreshed.Items {
		if refreshed.Items[i].RowID == rowID {
			refreshed.Items[i].EntryRetired = true
		}
	}

	f.mu.Lock()
	f.lastInquiryList = &refreshed
	f.mu.Unlock()

	content, err := f.renderer.Render(view.DialogInquiryList, refreshed)
	if err != nil {
		logctx.From(ctx).Error("render_failed",
			slog.String("dialog", string(view.DialogInquiryList)),
			slog.String("err", err.Error()),
		)

		return
	}

	f.registry.Update(view.DialogInquiryList, content)
}
