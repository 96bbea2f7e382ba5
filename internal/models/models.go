// models содержит транзитные view-модели фронта.
//
// Все сущности живут в рамках одного запроса/открытого диалога:
// их порождает API-клиент, потребляет рендерер, и они отбрасываются
// при следующей загрузке или закрытии диалога. Персистентным хранилищем
// владеет бэкенд.
package models

import "io"

// MenuSection — раздел навигации с подпунктами.
type MenuSection struct {
	Main string   `json:"main"`
	Sub  []string `json:"sub"`
}

// PageInfo — метаданные пагинации от бэкенда.
//
// Инварианты:
//   - CurrentPage >= 1 и CurrentPage <= max(TotalPages, 1);
//   - при TotalItems == 0 допускается TotalPages == 0 — рендерится
//     пустое состояние, а не пагинация.
type PageInfo struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PerPage     int `json:"per_page"`
}

// ListPage — страница элементов списка.
// Items всегда не nil: пустая страница — это пустой срез.
type ListPage[T any] struct {
	Items      []T
	Pagination PageInfo
}

// InquirySummary — строка публичного списка обращений.
// ПДн (имя, телефон) маскируются на этапе рендера; немаскированное
// значение после рендера отдельно не хранится.
type InquirySummary struct {
	RowID  int64  `json:"row_id"`
	Date   string `json:"date"`
	Serial string `json:"serial"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// InquiryDetail — полная карточка обращения.
// Доступна только после успешной проверки пароля и не кэшируется
// дольше жизни открытого диалога.
type InquiryDetail struct {
	Date          string `json:"date"`
	Serial        string `json:"serial"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Question      string `json:"question"`
	AnswerContent string `json:"answer_content"`
	AnswerDate    string `json:"answer_date"`
	AnswerStatus  string `json:"answer_status"`
}

// AdminInquiry — строка административного списка обращений
// (без маскирования, с предпросмотром вопроса/ответа).
type AdminInquiry struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Serial     string `json:"serial"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerDate string `json:"answer_date"`
	Status     string `json:"status"`
}

// Material — единица раздела «자료배포».
type Material struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FileName      string `json:"file_name"`
	FileSize      string `json:"file_size"`
	FileType      string `json:"file_type"`
	Category      string `json:"category"`
	DownloadCount int    `json:"download_count"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

// ProgramFile — файл из раздела программных материалов.
type ProgramFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Size         string `json:"size"`
	ModifiedTime string `json:"modifiedTime"`
	DownloadURL  string `json:"downloadUrl"`
}

// DownloadInfo — результат запроса на скачивание материала.
type DownloadInfo struct {
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
}

// MutationResult — единый конверт ответа на мутации.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// InquiryInput — форма «문의하기». Все поля обязательны;
// пустые значения отклоняются до сетевого вызова.
type InquiryInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Password string `json:"password"`
}

// MaterialInput — форма регистрации нового материала (multipart).
// Title и File обязательны.
type MaterialInput struct {
	Title       string
	Description string
	Category    string
	FileName    string
	File        io.Reader
}

// MaterialUpdate — правка метаданных материала без файла.
type MaterialUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
