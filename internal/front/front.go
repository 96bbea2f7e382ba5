// front — контроллер пользовательских потоков корпоративного сайта.
//
// Пакет оркестрирует три структурно одинаковых потока поверх API
// бэкенда:
//   - гейтированный списковый диалог (обращения, админ-обращения,
//     админ-материалы): загрузка страницы, рендер, пагинация;
//   - разблокировка карточки по паролю;
//   - мутации (регистрация обращения/ответа, CRUD материалов)
//     с обновлением соответствующего списка после успеха.
//
// Представления монтируются через Renderer и реестр view.Registry;
// уведомления и подтверждения уходят внешним коллабораторам Notifier
// и Confirmer. Учётные данные нигде не сохраняются: каждый вызов
// получает их явным параметром.
package front

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/logctx"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/view"
)

// Backend — операции API, нужные потокам фронта.
// Реализуется клиентом internal/client.
type Backend interface {
	Menu(ctx context.Context) ([]models.MenuSection, error)
	CompanyIntro(ctx context.Context) (string, error)
	CompanyHistory(ctx context.Context) ([]string, error)
	Contact(ctx context.Context) ([]string, error)
	ProgramFiles(ctx context.Context) ([]models.ProgramFile, error)

	InquiryList(ctx context.Context, page int) (models.ListPage[models.InquirySummary], error)
	SubmitInquiry(ctx context.Context, in models.InquiryInput) (models.MutationResult, error)
	VerifyInquiry(ctx context.Context, rowID int64, password string) (*models.InquiryDetail, error)
	AdminInquiryList(ctx context.Context, adminPassword string, page int) (models.ListPage[models.AdminInquiry], error)
	AddAnswer(ctx context.Context, adminPassword string, inquiryID int64, answer string) (models.MutationResult, error)

	Materials(ctx context.Context, category string) ([]models.Material, error)
	DownloadMaterial(ctx context.Context, id int64) (models.DownloadInfo, error)
	AdminMaterials(ctx context.Context) ([]models.Material, error)
	CreateMaterial(ctx context.Context, adminPassword string, in models.MaterialInput) (models.MutationResult, error)
	UpdateMaterial(ctx context.Context, adminPassword string, id int64, upd models.MaterialUpdate) (models.MutationResult, error)
	SetMaterialActive(ctx context.Context, adminPassword string, id int64, active bool) (models.MutationResult, error)
	DeleteMaterial(ctx context.Context, adminPassword string, id int64) (models.MutationResult, error)
}

// Renderer превращает view-модель диалога в содержимое представления.
type Renderer interface {
	Render(id view.Identity, data any) (string, error)
}

// Notifier показывает пользователю блокирующее уведомление.
type Notifier interface {
	Notify(msg string)
}

// Confirmer запрашивает явное подтверждение разрушительного действия.
type Confirmer interface {
	Confirm(msg string) bool
}

// ResourceKind — вид гейтированного спискового ресурса.
type ResourceKind string

const (
	KindInquiry       ResourceKind = "inquiry"
	KindAdminInquiry  ResourceKind = "admin_inquiry"
	KindAdminMaterial ResourceKind = "admin_material"
)

// adminPerPage — размер страницы клиентской пагинации
// административного списка материалов.
const adminPerPage = 15

// Front — контроллер. Безопасен для конкурентного использования;
// перекрывающиеся запросы одного диалога разрешаются по номеру
// последовательности его сессии (последний выданный побеждает).
type Front struct {
	api      Backend
	registry *view.Registry
	renderer Renderer
	notifier Notifier
	confirm  Confirmer

	mu       sync.Mutex
	sessions map[view.Identity]*view.Session
	// Последняя отрендеренная (уже маскированная) модель публичного
	// списка — нужна, чтобы отставить форму пароля строки без
	// повторной загрузки.
	lastInquiryList *InquiryListVM
}

// New собирает контроллер из внешних коллабораторов.
func New(api Backend, renderer Renderer, notifier Notifier, confirm Confirmer) *Front {
	return &Front{
		api:      api,
		registry: view.NewRegistry(),
		renderer: renderer,
		notifier: notifier,
		confirm:  confirm,
		sessions: make(map[view.Identity]*view.Session),
	}
}

// Registry — реестр смонтированных диалогов (для слоя представления).
func (f *Front) Registry() *view.Registry { return f.registry }

// Close закрывает диалог и уничтожает его сессию.
func (f *Front) Close(id view.Identity) { f.registry.Close(id) }

// session возвращает сессию диалога, создавая её при первом обращении.
func (f *Front) session(id view.Identity) *view.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		s = view.NewSession()
		f.sessions[id] = s
	}

	return s
}

// resetSession заменяет сессию диалога новой (повторное открытие
// той же роли не наследует страницу и отставленные строки).
func (f *Front) resetSession(id view.Identity) *view.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := view.NewSession()
	f.sessions[id] = s
	return s
}

// dropSessionIf уничтожает сессию диалога, только если она всё ещё
// текущая: teardown заменённого представления не должен снести сессию
// пришедшего ему на смену.
func (f *Front) dropSessionIf(id view.Identity, sess *view.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sessions[id] == sess {
		delete(f.sessions, id)
	}
}

// currentSession — сессия sess всё ещё принадлежит диалогу id.
func (f *Front) currentSession(id view.Identity, sess *view.Session) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions[id] == sess
}

// mount рендерит модель и монтирует представление, заменяя прежнее.
func (f *Front) mount(ctx context.Context, id view.Identity, data any) error {
	return f.mountWith(ctx, id, data, nil)
}

// mountGated монтирует представление гейтированного диалога:
// teardown привязан к конкретной сессии, а устаревшая сессия
// (диалог переоткрыт, пока шёл запрос) ничего не монтирует.
func (f *Front) mountGated(ctx context.Context, id view.Identity, data any, sess *view.Session) error {
	if !f.currentSession(id, sess) {
		logctx.From(ctx).Debug("stale_session_discarded", slog.String("dialog", string(id)))
		return nil
	}

	return f.mountWith(ctx, id, data, func() { f.dropSessionIf(id, sess) })
}

func (f *Front) mountWith(ctx context.Context, id view.Identity, data any, teardown func()) error {
	content, err := f.renderer.Render(id, data)
	if err != nil {
		logctx.From(ctx).Error("render_failed",
			slog.String("dialog", string(id)),
			slog.String("err", err.Error()),
		)
		f.notifier.Notify(failure.Message(err))

		return err
	}

	f.registry.Open(id, content, teardown)
	return nil
}

// fail уведомляет пользователя и возвращает ошибку как есть.
// Единственная точка конвертации ошибок потоков в уведомления.
func (f *Front) fail(ctx context.Context, op string, err error) error {
	lg := logctx.From(ctx)
	if k, ok := failure.KindOf(err); ok && (k == failure.Validation || k == failure.Auth) {
		lg.Warn(op, slog.String("kind", string(k)))
	} else {
		lg.Error(op, slog.String("err", err.Error()))
	}

	f.notifier.Notify(failure.Message(err))
	return err
}
