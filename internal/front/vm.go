package front

import (
	"github.com/hanstar/webfront/internal/mask"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/paging"
	"github.com/hanstar/webfront/internal/view"
)

// previewLimit — длина предпросмотра вопроса/ответа в админ-списке.
const previewLimit = 100

// InquiryRowVM — строка публичного списка. Имя и телефон уже
// маскированы: немаскированные значения в модель не попадают.
type InquiryRowVM struct {
	RowID        int64
	Date         string
	Serial       string
	Name         string
	Phone        string
	EntryRetired bool
}

// InquiryListVM — публичный список обращений.
type InquiryListVM struct {
	Items      []InquiryRowVM
	Empty      bool
	Pagination *paging.Controls
}

func buildInquiryListVM(page models.ListPage[models.InquirySummary], sess *view.Session) InquiryListVM {
	items := make([]InquiryRowVM, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, InquiryRowVM{
			RowID:        it.RowID,
			Date:         it.Date,
			Serial:       it.Serial,
			Name:         mask.Name(it.Name),
			Phone:        mask.Phone(it.Phone),
			EntryRetired: sess.Retired(it.RowID),
		})
	}

	return InquiryListVM{
		Items:      items,
		Empty:      page.Pagination.TotalItems == 0,
		Pagination: paging.Build(page.Pagination),
	}
}

// AdminInquiryVM — строка админ-списка с предпросмотрами.
type AdminInquiryVM struct {
	ID              int64
	Date            string
	Serial          string
	Name            string
	Phone           string
	QuestionPreview string
	AnswerPreview   string
	AnswerDate      string
	Status          string
	HasAnswer       bool
}

// AdminInquiriesVM — диалог «답변등록»: до загрузки списка показывает
// только ввод пароля (Loaded == false).
type AdminInquiriesVM struct {
	Loaded     bool
	Items      []AdminInquiryVM
	Empty      bool
	Pagination *paging.Controls
}

func buildAdminInquiriesVM(page models.ListPage[models.AdminInquiry]) AdminInquiriesVM {
	items := make([]AdminInquiryVM, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, AdminInquiryVM{
			ID:              it.ID,
			Date:            it.Date,
			Serial:          it.Serial,
			Name:            it.Name,
			Phone:           it.Phone,
			QuestionPreview: preview(it.Question),
			AnswerPreview:   preview(it.Answer),
			AnswerDate:      it.AnswerDate,
			Status:          it.Status,
			HasAnswer:       it.Answer != "",
		})
	}

	return AdminInquiriesVM{
		Loaded:     true,
		Items:      items,
		Empty:      page.Pagination.TotalItems == 0,
		Pagination: paging.Build(page.Pagination),
	}
}

// AdminMaterialsVM — диалог «자료등록».
type AdminMaterialsVM struct {
	Loaded     bool
	Items      []models.Material
	Empty      bool
	Pagination *paging.Controls
}

func buildAdminMaterialsVM(page models.ListPage[models.Material]) AdminMaterialsVM {
	return AdminMaterialsVM{
		Loaded:     true,
		Items:      page.Items,
		Empty:      page.Pagination.TotalItems == 0,
		Pagination: paging.Build(page.Pagination),
	}
}

// MaterialsVM — публичный список материалов (без пагинации).
type MaterialsVM struct {
	Items []models.Material
	Empty bool
}

// ProgramFilesVM — список программных материалов.
type ProgramFilesVM struct {
	Files []models.ProgramFile
	Empty bool
}

// ContentVM — статический текстовый диалог (회사소개 и т.п.).
type ContentVM struct {
	Title string
	Lines []string
}

// preview обрезает текст до previewLimit рун с многоточием.
func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}

	return string(r[:previewLimit]) + "..."
}
