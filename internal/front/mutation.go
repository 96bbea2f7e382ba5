package front

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/view"
)

// AnswerFormVM — форма «답변작성» для конкретного обращения.
type AnswerFormVM struct {
	InquiryID       int64
	Serial          string
	QuestionPreview string
	Answer          string
}

// MaterialFormVM — форма регистрации/правки материала.
type MaterialFormVM struct {
	Material *models.Material
}

// OpenAnswerForm монтирует форму ответа на обращение админ-списка.
func (f *Front) OpenAnswerForm(ctx context.Context, item AdminInquiryVM) error {
	return f.mount(ctx, view.DialogAnswerForm, AnswerFormVM{
		InquiryID:       item.ID,
		Serial:          item.Serial,
		QuestionPreview: item.QuestionPreview,
		Answer:          item.AnswerPreview,
	})
}

// OpenMaterialForm монтирует форму материала: пустую для регистрации,
// заполненную для правки.
func (f *Front) OpenMaterialForm(ctx context.Context, m *models.Material) error {
	return f.mount(ctx, view.DialogMaterialForm, MaterialFormVM{Material: m})
}

// SubmitInquiry регистрирует обращение. Все пять полей обязательны;
// проверка идёт до сетевого вызова. После успеха форма закрывается,
// а публичный список, если открыт, перечитывается с первой страницы:
// новые обращения появляются сверху.
func (f *Front) SubmitInquiry(ctx context.Context, in models.InquiryInput) error {
	const op = "front.mutation.SubmitInquiry"

	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Message == "" || in.Password == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "모든 항목을 입력해주세요."))
	}

	res, err := f.api.SubmitInquiry(ctx, in)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("inquiry_submitted", slog.String("op", op))
	f.notifier.Notify("문의가 성공적으로 등록되었습니다.")
	f.Close(view.DialogInquiryForm)

	if _, ok := f.registry.Mounted(view.DialogInquiryList); ok {
		return f.OpenInquiryList(ctx, 1)
	}

	return nil
}

// SubmitAnswer регистрирует ответ администратора на обращение.
// Ответ меняет строку на месте, поэтому админ-список перечитывается
// с текущей страницы, а не с первой.
func (f *Front) SubmitAnswer(ctx context.Context, credential string, inquiryID int64, answer string) error {
	const op = "front.mutation.SubmitAnswer"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "답변 내용을 입력해주세요."))
	}

	res, err := f.api.AddAnswer(ctx, credential, inquiryID, answer)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("answer_submitted",
		slog.String("op", op),
		slog.Int64("inquiry_id", inquiryID),
	)
	f.notifySuccess(res, "답변이 성공적으로 등록되었습니다.")
	f.Close(view.DialogAnswerForm)

	return f.OpenAdminInquiries(ctx, credential, f.session(view.DialogAdminInquiries).Page())
}

// CreateMaterial регистрирует новый материал (метаданные + файл).
// После успеха список перечитывается с первой страницы: новые
// материалы появляются сверху.
func (f *Front) CreateMaterial(ctx context.Context, credential string, in models.MaterialInput) error {
	const op = "front.mutation.CreateMaterial"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}
	if strings.TrimSpace(in.Title) == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "제목은 필수입니다."))
	}
	if in.File == nil || in.FileName == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "파일을 선택해주세요."))
	}

	res, err := f.api.CreateMaterial(ctx, credential, in)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("material_created",
		slog.String("op", op),
		slog.String("file", in.FileName),
	)
	f.notifySuccess(res, "자료가 성공적으로 등록되었습니다.")
	f.Close(view.DialogMaterialForm)

	return f.OpenAdminMaterials(ctx, credential, 1)
}

// UpdateMaterial правит метаданные материала без замены файла.
// Правка на месте: список перечитывается с текущей страницы.
func (f *Front) UpdateMaterial(ctx context.Context, credential string, id int64, upd models.MaterialUpdate) error {
	const op = "front.mutation.UpdateMaterial"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}
	if strings.TrimSpace(upd.Title) == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "제목은 필수입니다."))
	}

	res, err := f.api.UpdateMaterial(ctx, credential, id, upd)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("material_updated", slog.String("op", op), slog.Int64("id", id))
	f.notifySuccess(res, "자료가 수정되었습니다.")
	f.Close(view.DialogMaterialForm)

	return f.OpenAdminMaterials(ctx, credential, f.session(view.DialogAdminMaterials).Page())
}

// SetMaterialActive переключает публичную видимость материала.
// Правка на месте: текущая страница сохраняется.
func (f *Front) SetMaterialActive(ctx context.Context, credential string, id int64, active bool) error {
	const op = "front.mutation.SetMaterialActive"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}

	res, err := f.api.SetMaterialActive(ctx, credential, id, active)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("material_status_changed",
		slog.String("op", op),
		slog.Int64("id", id),
		slog.Bool("active", active),
	)

	return f.OpenAdminMaterials(ctx, credential, f.session(view.DialogAdminMaterials).Page())
}

// DeleteMaterial удаляет материал после явного подтверждения.
// Отказ от подтверждения — молчаливый no-op: ни запроса, ни
// уведомления. После успеха список перечитывается с первой страницы.
func (f *Front) DeleteMaterial(ctx context.Context, credential string, id int64) error {
	const op = "front.mutation.DeleteMaterial"

	if credential == "" {
		return f.fail(ctx, op,
			failure.New(failure.Validation, "관리자 비밀번호를 입력해주세요."))
	}

	if !f.confirm.Confirm("정말로 이 자료를 삭제하시겠습니까?") {
		logctx.From(ctx).Debug("material_delete_declined",
			slog.String("op", op),
			slog.Int64("id", id),
		)

		return nil
	}

	res, err := f.api.DeleteMaterial(ctx, credential, id)
	if err != nil {
		return f.fail(ctx, op, err)
	}
	if err := f.mutationOK(ctx, op, res); err != nil {
		return err
	}

	logctx.From(ctx).Info("material_deleted", slog.String("op", op), slog.Int64("id", id))
	f.notifySuccess(res, "자료가 삭제되었습니다.")

	return f.OpenAdminMaterials(ctx, credential, 1)
}

// mutationOK отклоняет ответ 2xx с success == false: такой ответ —
// отказ бэкенда, представление не обновляется.
func (f *Front) mutationOK(ctx context.Context, op string, res models.MutationResult) error {
	if res.Success {
		return nil
	}

	msg := res.Error
	if msg == "" {
		msg = res.Message
	}
	return f.fail(ctx, op, failure.FromAPI(0, msg))
}

// notifySuccess показывает сообщение бэкенда, а при его отсутствии —
// запасное.
func (f *Front) notifySuccess(res models.MutationResult, fallback string) {
	if res.Message != "" {
		f.notifier.Notify(res.Message)
		return
	}

	f.notifier.Notify(fallback)
}
