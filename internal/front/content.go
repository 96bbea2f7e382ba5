package front

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/view"
)

// OpenCompanyIntro — диалог «회사소개».
func (f *Front) OpenCompanyIntro(ctx context.Context) error {
	const op = "front.content.OpenCompanyIntro"

	text, err := f.api.CompanyIntro(ctx)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	return f.mount(ctx, view.DialogCompanyIntro, ContentVM{
		Title: "회사소개",
		Lines: strings.Split(text, "\n"),
	})
}

// OpenCompanyHistory — диалог «회사연혁».
func (f *Front) OpenCompanyHistory(ctx context.Context) error {
	const op = "front.content.OpenCompanyHistory"

	lines, err := f.api.CompanyHistory(ctx)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	return f.mount(ctx, view.DialogCompanyHistory, ContentVM{
		Title: "회사연혁",
		Lines: lines,
	})
}

// OpenContact — диалог «연락처».
func (f *Front) OpenContact(ctx context.Context) error {
	const op = "front.content.OpenContact"

	lines, err := f.api.Contact(ctx)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	return f.mount(ctx, view.DialogContact, ContentVM{
		Title: "연락처",
		Lines: lines,
	})
}

// OpenDirections — статичный диалог «찾아오시는길» (без запроса).
func (f *Front) OpenDirections(ctx context.Context) error {
	return f.mount(ctx, view.DialogDirections, ContentVM{Title: "찾아오시는길"})
}

// OpenInquiryForm монтирует пустую форму «문의하기».
func (f *Front) OpenInquiryForm(ctx context.Context) error {
	return f.mount(ctx, view.DialogInquiryForm, models.InquiryInput{})
}

// OpenProgramFiles — диалог программных материалов.
func (f *Front) OpenProgramFiles(ctx context.Context) error {
	const op = "front.content.OpenProgramFiles"

	files, err := f.api.ProgramFiles(ctx)
	if err != nil {
		return f.fail(ctx, op, err)
	}

	return f.mount(ctx, view.DialogProgramFiles, ProgramFilesVM{
		Files: files,
		Empty: len(files) == 0,
	})
}

// OpenMaterials — публичный диалог «자료받기».
func (f *Front) OpenMaterials(ctx context.Context) error {
	const op = "front.content.OpenMaterials"

	items, err := f.api.Materials(ctx, "")
	if err != nil {
		return f.fail(ctx, op, err)
	}

	return f.mount(ctx, view.DialogMaterials, MaterialsVM{
		Items: items,
		Empty: len(items) == 0,
	})
}

// DownloadMaterial запрашивает ссылку на скачивание и уведомляет
// пользователя. Саму навигацию по ссылке выполняет слой представления.
func (f *Front) DownloadMaterial(ctx context.Context, id int64) (models.DownloadInfo, error) {
	const op = "front.content.DownloadMaterial"

	info, err := f.api.DownloadMaterial(ctx, id)
	if err != nil {
		return models.DownloadInfo{}, f.fail(ctx, op, err)
	}

	logctx.From(ctx).Info("material_download",
		slog.String("op", op),
		slog.Int64("id", id),
		slog.String("file", info.FileName),
	)
	f.notifier.Notify("다운로드가 시작되었습니다.")

	return info, nil
}
