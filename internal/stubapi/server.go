// stubapi — автономный бэкенд для разработки и тестов фронта.
//
// Повторяет контракт боевого API сайта: JSON-конверты, коды ответов,
// правила пагинации (15 на страницу, пустой список — total_pages 0)
// и дневные двухзначные серийные номера обращений. Хранит данные
// в SQLite, загруженные файлы — на диске.
package stubapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/web/middleware"
)

// maxUploadBytes — предел размера загружаемого файла (16 MB).
const maxUploadBytes = 16 << 20

// allowedExtensions — разрешённые расширения загружаемых файлов.
var allowedExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true, "zip": true, "rar": true,
}

// Options — параметры сборки бэкенда.
type Options struct {
	Logger        *slog.Logger
	AdminPassword string
	UploadDir     string
	PerPage       int
	Timeout       time.Duration
}

// Server — HTTP-обвязка хранилища.
type Server struct {
	store     *Store
	adminPass string
	uploadDir string
	perPage   int
}

// NewServer собирает бэкенд поверх открытого хранилища.
func NewServer(store *Store, opts Options) *Server {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 15
	}

	return &Server{
		store:     store,
		adminPass: opts.AdminPassword,
		uploadDir: opts.UploadDir,
		perPage:   perPage,
	}
}

// Router собирает http.Handler со всеми эндпойнтами API.
func (s *Server) Router(opts Options) http.Handler {
	root := chi.NewRouter()

	root.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	root.Get("/api/menu", s.handleMenu)
	root.Get("/api/contact", s.handleContact)
	root.Get("/api/company-intro", s.handleCompanyIntro)
	root.Get("/api/company-history", s.handleCompanyHistory)
	root.Get("/api/program-files", s.handleProgramFiles)

	root.Post("/api/inquiry", s.handleSubmitInquiry)
	root.Get("/api/inquiry-list", s.handleInquiryList)
	root.Post("/api/verify-inquiry", s.handleVerifyInquiry)

	root.Post("/api/admin/inquiry-list", s.handleAdminInquiryList)
	root.Post("/api/admin/add-answer", s.handleAddAnswer)

	root.Get("/api/materials", s.handleMaterials)
	root.Route("/api/materials/{id}/download", func(r chi.Router) {
		r.Get("/", s.handleDownload)
		r.Post("/", s.handleDownload)
	})

	root.Get("/api/admin/materials", s.handleAdminMaterials)
	root.Post("/api/admin/materials", s.handleCreateMaterial)
	root.Put("/api/admin/materials/{id}", s.handleUpdateMaterial)
	root.Delete("/api/admin/materials/{id}", s.handleDeleteMaterial)

	root.Get("/files/{name}", s.handleServeFile)

	return root
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func failJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func (s *Server) checkAdmin(password string) bool {
	return password == s.adminPass
}

func (s *Server) handleMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"menu": staticMenu()})
}

func (s *Server) handleContact(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"contact": staticContact()})
}

func (s *Server) handleCompanyIntro(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"company_intro": staticCompanyIntro()})
}

func (s *Server) handleCompanyHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"company_history": staticCompanyHistory()})
}

func (s *Server) handleProgramFiles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"files": staticProgramFiles()})
}

func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var in models.InquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	required := []struct{ name, value string }{
		{"name", in.Name},
		{"phone", in.Phone},
		{"email", in.Email},
		{"message", in.Message},
		{"password", in.Password},
	}
	for _, f := range required {
		if f.value == "" {
			failJSON(w, http.StatusBadRequest, fmt.Sprintf("%s 필드가 필요합니다.", f.name))
			return
		}
	}

	if _, err := s.store.SaveInquiry(in.Name, in.Phone, in.Email, in.Message, in.Password); err != nil {
		logctx.From(r.Context()).Error("save_inquiry", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "문의 데이터 저장 실패")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "문의가 성공적으로 등록되었습니다.",
	})
}

// pageOf нормализует номер страницы по правилам списков:
// ниже 1 — первая, выше последней — последняя.
func pageOf(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}

	return page
}

func (s *Server) handleInquiryList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	total, err := s.store.CountInquiries()
	if err != nil {
		logctx.From(r.Context()).Error("count_inquiries", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "문의 목록을 가져올 수 없습니다."})
		return
	}

	if total == 0 {
		writeJSON(w, http.StatusOK, map[string]any{
			"inquiries": []any{},
			"pagination": models.PageInfo{
				CurrentPage: 1,
				TotalPages:  0,
				TotalItems:  0,
				PerPage:     s.perPage,
			},
		})
		return
	}

	totalPages := (total + s.perPage - 1) / s.perPage
	page = pageOf(page, totalPages)

	rows, err := s.store.ListInquiries(s.perPage, (page-1)*s.perPage)
	if err != nil {
		logctx.From(r.Context()).Error("list_inquiries", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "문의 목록을 가져올 수 없습니다."})
		return
	}

	items := make([]models.InquirySummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.InquirySummary{
			RowID:  row.ID,
			Date:   row.Date,
			Serial: row.Serial,
			Name:   row.Name,
			Phone:  row.Phone,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"inquiries": items,
		"pagination": models.PageInfo{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			PerPage:     s.perPage,
		},
	})
}

func (s *Server) handleVerifyInquiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RowID    int64  `json:"row_id"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RowID == 0 || req.Password == "" {
		failJSON(w, http.StatusBadRequest, "문의 ID와 비밀번호가 필요합니다.")
		return
	}

	row, err := s.store.GetInquiry(req.RowID)
	if errors.Is(err, ErrNotFound) {
		failJSON(w, http.StatusNotFound, "해당 문의를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logctx.From(r.Context()).Error("get_inquiry", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "문의 확인 중 오류가 발생했습니다.")
		return
	}

	if row.Password != req.Password {
		failJSON(w, http.StatusUnauthorized, "비밀번호가 일치하지 않습니다.")
		return
	}

	detail := models.InquiryDetail{
		Date:          row.Date,
		Serial:        row.Serial,
		Name:          row.Name,
		Phone:         row.Phone,
		Email:         row.Email,
		Question:      row.Message,
		AnswerContent: row.Answer,
		AnswerDate:    row.AnswerDate,
		AnswerStatus:  "대기중",
	}
	if row.Answer == "" {
		detail.AnswerContent = "아직 답변이 등록되지 않았습니다."
	} else {
		detail.AnswerStatus = "답변완료"
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "inquiry": detail})
}

func (s *Server) handleAdminInquiryList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdminPassword string `json:"admin_password"`
		Page          int    `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if !s.checkAdmin(req.AdminPassword) {
		failJSON(w, http.StatusUnauthorized, "관리자 인증에 실패했습니다.")
		return
	}

	total, err := s.store.CountInquiries()
	if err != nil {
		logctx.From(r.Context()).Error("count_inquiries", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "문의 목록을 가져올 수 없습니다.")
		return
	}

	totalPages := (total + s.perPage - 1) / s.perPage
	page := pageOf(req.Page, totalPages)

	rows, err := s.store.ListInquiries(s.perPage, (page-1)*s.perPage)
	if err != nil {
		logctx.From(r.Context()).Error("list_inquiries", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "문의 목록을 가져올 수 없습니다.")
		return
	}

	items := make([]models.AdminInquiry, 0, len(rows))
	for _, row := range rows {
		status := "대기중"
		if row.Answer != "" {
			status = "답변완료"
		}
		items = append(items, models.AdminInquiry{
			ID:         row.ID,
			Date:       row.Date,
			Serial:     row.Serial,
			Name:       row.Name,
			Phone:      row.Phone,
			Email:      row.Email,
			Question:   row.Message,
			Answer:     row.Answer,
			AnswerDate: row.AnswerDate,
			Status:     status,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"inquiries": items,
		"pagination": models.PageInfo{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			PerPage:     s.perPage,
		},
	})
}

func (s *Server) handleAddAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AdminPassword string `json:"admin_password"`
		InquiryID     int64  `json:"inquiry_id"`
		AnswerContent string `json:"answer_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if !s.checkAdmin(req.AdminPassword) {
		failJSON(w, http.StatusUnauthorized, "관리자 인증에 실패했습니다.")
		return
	}
	if req.InquiryID == 0 || req.AnswerContent == "" {
		failJSON(w, http.StatusBadRequest, "문의 ID와 답변 내용이 필요합니다.")
		return
	}

	answerDate, err := s.store.AddAnswer(req.InquiryID, req.AnswerContent)
	if errors.Is(err, ErrNotFound) {
		failJSON(w, http.StatusNotFound, "해당 문의를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logctx.From(r.Context()).Error("add_answer", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "답변 등록 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "답변이 성공적으로 등록되었습니다.",
		"answer_date": answerDate,
	})
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListMaterials(r.URL.Query().Get("category"), true)
	if err != nil {
		logctx.From(r.Context()).Error("list_materials", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "자료 목록을 가져올 수 없습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "materials": items})
}

func (s *Server) handleAdminMaterials(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListMaterials("", false)
	if err != nil {
		logctx.From(r.Context()).Error("list_materials", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "자료 목록을 가져올 수 없습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "materials": items})
}

func allowedFile(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext != "" && allowedExtensions[ext]
}

// uniqueName подбирает незанятое имя файла в каталоге загрузок,
// добавляя числовой суффикс к базовому имени.
func (s *Server) uniqueName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(s.uploadDir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
}

func sizeLabel(n int64) string {
	if n > 1<<20 {
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}

	return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if !s.checkAdmin(r.FormValue("admin_password")) {
		failJSON(w, http.StatusUnauthorized, "관리자 인증에 실패했습니다.")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		failJSON(w, http.StatusBadRequest, "제목은 필수입니다.")
		return
	}
	description := r.FormValue("description")
	category := r.FormValue("category")
	if category == "" {
		category = "기타"
	}

	file, hdr, err := r.FormFile("file")
	if err != nil || hdr.Filename == "" {
		failJSON(w, http.StatusBadRequest, "파일이 선택되지 않았습니다.")
		return
	}
	defer file.Close()

	if !allowedFile(hdr.Filename) {
		failJSON(w, http.StatusBadRequest, "허용되지 않는 파일 형식입니다.")
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		logctx.From(r.Context()).Error("mkdir_uploads", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "파일 업로드 중 오류가 발생했습니다.")
		return
	}

	savedName := s.uniqueName(filepath.Base(hdr.Filename))
	dstPath := filepath.Join(s.uploadDir, savedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logctx.From(r.Context()).Error("create_upload", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "파일 업로드 중 오류가 발생했습니다.")
		return
	}

	written, err := io.Copy(dst, file)
	closeErr := dst.Close()
	if err != nil || closeErr != nil {
		_ = os.Remove(dstPath)
		failJSON(w, http.StatusInternalServerError, "파일 업로드 중 오류가 발생했습니다.")
		return
	}

	fileType := hdr.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	if err := s.store.CreateMaterial(title, description, category,
		hdr.Filename, savedName, sizeLabel(written), fileType); err != nil {
		logctx.From(r.Context()).Error("create_material", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "자료 관리 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "자료가 성공적으로 등록되었습니다.",
		"file_info": map[string]any{
			"original_name": hdr.Filename,
			"saved_name":    savedName,
			"size":          sizeLabel(written),
			"type":          fileType,
		},
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	fileName, savedName, err := s.store.MaterialFile(id)
	if errors.Is(err, ErrNotFound) {
		failJSON(w, http.StatusNotFound, "자료를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logctx.From(r.Context()).Error("material_file", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "다운로드 처리 중 오류가 발생했습니다.")
		return
	}

	// Счётчик растёт только на POST; GET — повторное обращение
	// за той же ссылкой.
	if r.Method == http.MethodPost {
		if err := s.store.IncrementDownload(id); err != nil {
			logctx.From(r.Context()).Error("increment_download", slog.String("err", err.Error()))
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"download_url": "/files/" + savedName,
		"file_name":    fileName,
	})
}

func (s *Server) handleServeFile(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "name"))
	path := filepath.Join(s.uploadDir, name)

	if _, err := os.Stat(path); err != nil {
		failJSON(w, http.StatusNotFound, "파일 경로가 올바르지 않습니다.")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

func (s *Server) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	// Частичная правка: правка метаданных и переключение видимости
	// приходят на один эндпойнт, отсутствующие поля не трогаются.
	var req struct {
		AdminPassword string  `json:"admin_password"`
		Title         *string `json:"title"`
		Description   *string `json:"description"`
		Category      *string `json:"category"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if !s.checkAdmin(req.AdminPassword) {
		failJSON(w, http.StatusUnauthorized, "관리자 인증에 실패했습니다.")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			failJSON(w, http.StatusBadRequest, "제목은 필수입니다.")
			return
		}

		description := ""
		if req.Description != nil {
			description = *req.Description
		}
		category := "기타"
		if req.Category != nil && *req.Category != "" {
			category = *req.Category
		}

		err = s.store.UpdateMaterialMeta(id, *req.Title, description, category)
	} else if req.IsActive != nil {
		err = s.store.SetMaterialActive(id, *req.IsActive)
	} else {
		failJSON(w, http.StatusBadRequest, "제목은 필수입니다.")
		return
	}

	if errors.Is(err, ErrNotFound) {
		failJSON(w, http.StatusNotFound, "자료를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logctx.From(r.Context()).Error("update_material", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "자료 관리 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "자료가 성공적으로 수정되었습니다.",
	})
}

func (s *Server) handleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	var req struct {
		AdminPassword string `json:"admin_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		failJSON(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	if !s.checkAdmin(req.AdminPassword) {
		failJSON(w, http.StatusUnauthorized, "관리자 인증에 실패했습니다.")
		return
	}

	err = s.store.DeleteMaterial(id)
	if errors.Is(err, ErrNotFound) {
		failJSON(w, http.StatusNotFound, "자료를 찾을 수 없습니다.")
		return
	}
	if err != nil {
		logctx.From(r.Context()).Error("delete_material", slog.String("err", err.Error()))
		failJSON(w, http.StatusInternalServerError, "자료 관리 중 오류가 발생했습니다.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "자료가 성공적으로 삭제되었습니다.",
	})
}
