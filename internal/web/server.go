// web — HTTP-оболочка фронта: принимает действия пользователя,
// прогоняет их через контроллер потоков и возвращает отрендеренные
// диалоги одним конвертом.
//
// Каждый ответ на действие содержит снимок смонтированных диалогов
// и накопленные уведомления; ошибка потока — это уведомление, а не
// HTTP-статус (транспорт до браузера всегда 200, кроме паник).
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hanstar/webfront/internal/front"
	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/view"
	"github.com/hanstar/webfront/internal/web/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// Server связывает контроллер потоков с HTTP-обвязкой.
type Server struct {
	front   *front.Front
	notices *noticeBuffer
}

// NewServer собирает контроллер с буфером уведомлений и браузерным
// подтверждением.
func NewServer(api front.Backend, renderer front.Renderer) *Server {
	nb := &noticeBuffer{}
	return &Server{
		front:   front.New(api, renderer, nb, browserConfirm{}),
		notices: nb,
	}
}

// Front — контроллер сервера (для тестов и встраивания).
func (s *Server) Front() *front.Front { return s.front }

// Router собирает http.Handler с chi и подключёнными middleware/роутами.
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

	root.Get("/menu", s.handleMenu)
	root.Post("/menu/select", s.handleMenuSelect)
	root.Post("/dialogs/close", s.handleCloseDialog)

	root.Get("/inquiries", s.handleInquiryList)
	root.Post("/inquiries", s.handleSubmitInquiry)
	root.Post("/inquiries/{row_id}/verify", s.handleVerifyInquiry)

	root.Post("/admin/inquiries/open", s.handleAdminInquiriesGate)
	root.Post("/admin/inquiries", s.handleAdminInquiries)
	root.Post("/admin/inquiries/{id}/answer", s.handleSubmitAnswer)

	root.Get("/materials", s.handleMaterials)
	root.Post("/materials/{id}/download", s.handleDownloadMaterial)
	root.Get("/program-files", s.handleProgramFiles)

	root.Post("/admin/materials/open", s.handleAdminMaterialsGate)
	root.Post("/admin/materials", s.handleAdminMaterials)
	root.Post("/admin/materials/create", s.handleCreateMaterial)
	root.Post("/admin/materials/{id}", s.handleUpdateMaterial)
	root.Post("/admin/materials/{id}/status", s.handleSetMaterialActive)
	root.Post("/admin/materials/{id}/delete", s.handleDeleteMaterial)

	return root
}

// dialogPayload — одно смонтированное представление в конверте ответа.
type dialogPayload struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// actionResponse — конверт ответа на действие пользователя.
type actionResponse struct {
	OK          bool            `json:"ok"`
	Dialogs     []dialogPayload `json:"dialogs"`
	Notices     []string        `json:"notices"`
	DownloadURL string          `json:"download_url,omitempty"`
}

// respond собирает снимок реестра диалогов и накопленные уведомления.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, flowErr error, extra func(*actionResponse)) {
	reg := s.front.Registry()

	resp := actionResponse{
		OK:      flowErr == nil,
		Dialogs: make([]dialogPayload, 0),
		Notices: s.notices.Drain(),
	}
	for _, id := range reg.Identities() {
		if h, ok := reg.Mounted(id); ok {
			resp.Dialogs = append(resp.Dialogs, dialogPayload{
				ID:      string(id),
				Content: h.Content(),
			})
		}
	}
	if extra != nil {
		extra(&resp)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logctx.From(r.Context()).Error("encode_response", slog.String("err", err.Error()))
	}
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	sections := s.front.LoadMenu(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{"menu": sections})
}

func (s *Server) handleMenuSelect(w http.ResponseWriter, r *http.Request) {
	err := s.front.HandleMenuSelect(r.Context(), r.FormValue("section"), r.FormValue("item"))
	s.respond(w, r, err, nil)
}

func (s *Server) handleCloseDialog(w http.ResponseWriter, r *http.Request) {
	s.front.Close(view.Identity(r.FormValue("dialog")))
	s.respond(w, r, nil, nil)
}

func (s *Server) handleInquiryList(w http.ResponseWriter, r *http.Request) {
	err := s.front.OpenInquiryList(r.Context(), queryInt(r, "page", 1))
	s.respond(w, r, err, nil)
}

func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	err := s.front.SubmitInquiry(r.Context(), models.InquiryInput{
		Name:     r.FormValue("name"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Message:  r.FormValue("message"),
		Password: r.FormValue("password"),
	})
	s.respond(w, r, err, nil)
}

func (s *Server) handleVerifyInquiry(w http.ResponseWriter, r *http.Request) {
	rowID, err := pathID(r, "row_id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	flowErr := s.front.VerifyInquiry(r.Context(), rowID, r.FormValue("password"))
	s.respond(w, r, flowErr, nil)
}

func (s *Server) handleAdminInquiriesGate(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.front.OpenAdminInquiriesGate(r.Context()), nil)
}

func (s *Server) handleAdminInquiries(w http.ResponseWriter, r *http.Request) {
	err := s.front.OpenAdminInquiries(r.Context(),
		r.FormValue("admin_password"), formInt(r, "page", 1))
	s.respond(w, r, err, nil)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	flowErr := s.front.SubmitAnswer(r.Context(),
		r.FormValue("admin_password"), id, r.FormValue("answer"))
	s.respond(w, r, flowErr, nil)
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.front.OpenMaterials(r.Context()), nil)
}

func (s *Server) handleDownloadMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	info, flowErr := s.front.DownloadMaterial(r.Context(), id)
	s.respond(w, r, flowErr, func(resp *actionResponse) {
		resp.DownloadURL = info.DownloadURL
	})
}

func (s *Server) handleProgramFiles(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.front.OpenProgramFiles(r.Context()), nil)
}

func (s *Server) handleAdminMaterialsGate(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.front.OpenAdminMaterialsGate(r.Context()), nil)
}

func (s *Server) handleAdminMaterials(w http.ResponseWriter, r *http.Request) {
	err := s.front.OpenAdminMaterials(r.Context(),
		r.FormValue("admin_password"), formInt(r, "page", 1))
	s.respond(w, r, err, nil)
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, `{"error":"bad multipart"}`, http.StatusBadRequest)
		return
	}

	in := models.MaterialInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	if file, hdr, err := r.FormFile("file"); err == nil {
		defer file.Close()
		in.File = file
		in.FileName = hdr.Filename
	}

	flowErr := s.front.CreateMaterial(r.Context(), r.FormValue("admin_password"), in)
	s.respond(w, r, flowErr, nil)
}

func (s *Server) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	flowErr := s.front.UpdateMaterial(r.Context(), r.FormValue("admin_password"), id,
		models.MaterialUpdate{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Category:    r.FormValue("category"),
		})
	s.respond(w, r, flowErr, nil)
}

func (s *Server) handleSetMaterialActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	active := r.FormValue("is_active") == "true"
	flowErr := s.front.SetMaterialActive(r.Context(), r.FormValue("admin_password"), id, active)
	s.respond(w, r, flowErr, nil)
}

func (s *Server) handleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
		return
	}

	flowErr := s.front.DeleteMaterial(r.Context(), r.FormValue("admin_password"), id)
	s.respond(w, r, flowErr, nil)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}

	return v
}

func formInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}

	return v
}
