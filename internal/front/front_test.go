package front

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanstar/webfront/internal/failure"
	"github.com/hanstar/webfront/internal/models"
	"github.com/hanstar/webfront/internal/view"
)

// Пакет unit-тестов для internal/front.
//
// Бэкенд, рендерер и уведомления подменяются фейками; проверяются
// контракты потоков: локальная валидация до сетевого вызова,
// маскирование в модели списка, отбрасывание опоздавших ответов,
// политика обновления списков после мутаций, подтверждение удаления.

// fakeBackend — управляемая подмена Backend. Не заданные методы
// возвращают нулевые значения без ошибок.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	menuFn             func(ctx context.Context) ([]models.MenuSection, error)
	inquiryListFn      func(ctx context.Context, page int) (models.ListPage[models.InquirySummary], error)
	submitInquiryFn    func(ctx context.Context, in models.InquiryInput) (models.MutationResult, error)
	verifyInquiryFn    func(ctx context.Context, rowID int64, password string) (*models.InquiryDetail, error)
	adminInquiryListFn func(ctx context.Context, pw string, page int) (models.ListPage[models.AdminInquiry], error)
	addAnswerFn        func(ctx context.Context, pw string, id int64, answer string) (models.MutationResult, error)
	adminMaterialsFn   func(ctx context.Context) ([]models.Material, error)
	deleteMaterialFn   func(ctx context.Context, pw string, id int64) (models.MutationResult, error)
	setActiveFn        func(ctx context.Context, pw string, id int64, active bool) (models.MutationResult, error)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]int)}
}

func (b *fakeBackend) called(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[name]++
}

func (b *fakeBackend) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *fakeBackend) Menu(ctx context.Context) ([]models.MenuSection, error) {
	b.called("Menu")
	if b.menuFn != nil {
		return b.menuFn(ctx)
	}
	return nil, nil
}

func (b *fakeBackend) CompanyIntro(context.Context) (string, error) { return "", nil }
func (b *fakeBackend) CompanyHistory(context.Context) ([]string, error) {
	return nil, nil
}
func (b *fakeBackend) Contact(context.Context) ([]string, error) { return nil, nil }
func (b *fakeBackend) ProgramFiles(context.Context) ([]models.ProgramFile, error) {
	return nil, nil
}

func (b *fakeBackend) InquiryList(ctx context.Context, page int) (models.ListPage[models.InquirySummary], error) {
	b.called("InquiryList")
	if b.inquiryListFn != nil {
		return b.inquiryListFn(ctx, page)
	}
	return models.ListPage[models.InquirySummary]{Items: []models.InquirySummary{}}, nil
}

func (b *fakeBackend) SubmitInquiry(ctx context.Context, in models.InquiryInput) (models.MutationResult, error) {
	b.called("SubmitInquiry")
	if b.submitInquiryFn != nil {
		return b.submitInquiryFn(ctx, in)
	}
	return models.MutationResult{Success: true}, nil
}

func (b *fakeBackend) VerifyInquiry(ctx context.Context, rowID int64, password string) (*models.InquiryDetail, error) {
	b.called("VerifyInquiry")
	if b.verifyInquiryFn != nil {
		return b.verifyInquiryFn(ctx, rowID, password)
	}
	return &models.InquiryDetail{}, nil
}

func (b *fakeBackend) AdminInquiryList(ctx context.Context, pw string, page int) (models.ListPage[models.AdminInquiry], error) {
	b.called("AdminInquiryList")
	if b.adminInquiryListFn != nil {
		return b.adminInquiryListFn(ctx, pw, page)
	}
	return models.ListPage[models.AdminInquiry]{Items: []models.AdminInquiry{}}, nil
}

func (b *fakeBackend) AddAnswer(ctx context.Context, pw string, id int64, answer string) (models.MutationResult, error) {
	b.called("AddAnswer")
	if b.addAnswerFn != nil {
		return b.addAnswerFn(ctx, pw, id, answer)
	}
	return models.MutationResult{Success: true}, nil
}

func (b *fakeBackend) Materials(context.Context, string) ([]models.Material, error) {
	b.called("Materials")
	return []models.Material{}, nil
}

func (b *fakeBackend) DownloadMaterial(context.Context, int64) (models.DownloadInfo, error) {
	b.called("DownloadMaterial")
	return models.DownloadInfo{}, nil
}

func (b *fakeBackend) AdminMaterials(ctx context.Context) ([]models.Material, error) {
	b.called("AdminMaterials")
	if b.adminMaterialsFn != nil {
		return b.adminMaterialsFn(ctx)
	}
	return []models.Material{}, nil
}

func (b *fakeBackend) CreateMaterial(context.Context, string, models.MaterialInput) (models.MutationResult, error) {
	b.called("CreateMaterial")
	return models.MutationResult{Success: true}, nil
}

func (b *fakeBackend) UpdateMaterial(context.Context, string, int64, models.MaterialUpdate) (models.MutationResult, error) {
	b.called("UpdateMaterial")
	return models.MutationResult{Success: true}, nil
}

func (b *fakeBackend) SetMaterialActive(ctx context.Context, pw string, id int64, active bool) (models.MutationResult, error) {
	b.called("SetMaterialActive")
	if b.setActiveFn != nil {
		return b.setActiveFn(ctx, pw, id, active)
	}
	return models.MutationResult{Success: true}, nil
}

func (b *fakeBackend) DeleteMaterial(ctx context.Context, pw string, id int64) (models.MutationResult, error) {
	b.called("DeleteMaterial")
	if b.deleteMaterialFn != nil {
		return b.deleteMaterialFn(ctx, pw, id)
	}
	return models.MutationResult{Success: true}, nil
}

// fakeRenderer запоминает последнюю модель каждого диалога.
type fakeRenderer struct {
	mu   sync.Mutex
	seq  int
	last map[view.Identity]any
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{last: make(map[view.Identity]any)}
}

func (r *fakeRenderer) Render(id view.Identity, data any) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.last[id] = data
	return fmt.Sprintf("%s#%d", id, r.seq), nil
}

func (r *fakeRenderer) lastData(id view.Identity) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last[id]
}

// recordNotifier накапливает показанные уведомления.
type recordNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

// stubConfirm отвечает на подтверждение заранее заданным решением.
type stubConfirm struct {
	answer bool
	asked  int
}

func (c *stubConfirm) Confirm(string) bool {
	c.asked++
	return c.answer
}

type fixture struct {
	backend  *fakeBackend
	renderer *fakeRenderer
	notifier *recordNotifier
	confirm  *stubConfirm
	front    *Front
}

func newFixture() *fixture {
	b := newFakeBackend()
	r := newFakeRenderer()
	n := &recordNotifier{}
	c := &stubConfirm{answer: true}

	return &fixture{
		backend:  b,
		renderer: r,
		notifier: n,
		confirm:  c,
		front:    New(b, r, n, c),
	}
}

// TestOpenInquiryList_MasksPII — имя и телефон в модели списка
// уже маскированы, немаскированные значения до рендерера не доходят.
func TestOpenInquiryList_MasksPII(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.inquiryListFn = func(_ context.Context, page int) (models.ListPage[models.InquirySummary], error) {
		return models.ListPage[models.InquirySummary]{
			Items: []models.InquirySummary{
				{RowID: 1, Date: "2025-01-10", Serial: "01", Name: "홍길동", Phone: "01012345678"},
			},
			Pagination: models.PageInfo{CurrentPage: 1, TotalPages: 1, TotalItems: 1, PerPage: 15},
		}, nil
	}

	require.NoError(t, fx.front.OpenInquiryList(context.Background(), 1))

	vm, ok := fx.renderer.lastData(view.DialogInquiryList).(InquiryListVM)
	require.True(t, ok)
	require.Len(t, vm.Items, 1)
	require.Equal(t, "홍**", vm.Items[0].Name)
	require.Equal(t, "0101234****", vm.Items[0].Phone)
	require.Nil(t, vm.Pagination)
}

// TestOpenInquiryList_EmptyState — пустой список рендерится с Empty,
// без пагинации.
func TestOpenInquiryList_EmptyState(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.inquiryListFn = func(context.Context, int) (models.ListPage[models.InquirySummary], error) {
		return models.ListPage[models.InquirySummary]{
			Items:      []models.InquirySummary{},
			Pagination: models.PageInfo{CurrentPage: 1, TotalPages: 0, TotalItems: 0, PerPage: 15},
		}, nil
	}

	require.NoError(t, fx.front.OpenInquiryList(context.Background(), 1))

	vm := fx.renderer.lastData(view.DialogInquiryList).(InquiryListVM)
	require.True(t, vm.Empty)
	require.Nil(t, vm.Pagination)
}

// TestOpenInquiryList_StaleResponseDiscarded — опоздавший ответ
// перекрытого запроса не перетирает более свежий.
func TestOpenInquiryList_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	block := make(chan struct{})
	started := make(chan struct{})
	fx.backend.inquiryListFn = func(_ context.Context, page int) (models.ListPage[models.InquirySummary], error) {
		if page == 1 {
			close(started)
			<-block
		}
		return models.ListPage[models.InquirySummary]{
			Items: []models.InquirySummary{},
			Pagination: models.PageInfo{
				CurrentPage: page, TotalPages: 3, TotalItems: 40, PerPage: 15,
			},
		}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fx.front.OpenInquiryList(context.Background(), 1)
	}()

	<-started
	require.NoError(t, fx.front.OpenInquiryList(context.Background(), 2))

	close(block)
	<-done

	// Представление осталось от запроса страницы 2.
	vm := fx.renderer.lastData(view.DialogInquiryList).(InquiryListVM)
	require.Equal(t, 2, vm.Pagination.Active)
	require.Equal(t, 2, fx.front.session(view.DialogInquiryList).Page())
}

// TestOpenAdminInquiries_EmptyCredential — пустой пароль отклоняется
// локально: сетевого вызова нет, пользователь уведомлён.
func TestOpenAdminInquiries_EmptyCredential(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	err := fx.front.OpenAdminInquiries(context.Background(), "", 1)
	require.Error(t, err)
	require.True(t, failure.IsKind(err, failure.Validation))
	require.Equal(t, 0, fx.backend.count("AdminInquiryList"))
	require.Contains(t, fx.notifier.all(), "관리자 비밀번호를 입력해주세요.")
}

// TestOpenAdminMaterials_ClientSidePaging — полный список бэкенда
// режется на страницы по 15 на клиенте.
func TestOpenAdminMaterials_ClientSidePaging(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.adminMaterialsFn = func(context.Context) ([]models.Material, error) {
		items := make([]models.Material, 20)
		for i := range items {
			items[i] = models.Material{ID: int64(i + 1)}
		}
		return items, nil
	}

	require.NoError(t, fx.front.OpenAdminMaterials(context.Background(), "pw", 2))

	vm := fx.renderer.lastData(view.DialogAdminMaterials).(AdminMaterialsVM)
	require.True(t, vm.Loaded)
	require.Len(t, vm.Items, 5)
	require.Equal(t, int64(16), vm.Items[0].ID)
	require.Equal(t, 2, vm.Pagination.Active)
}

// TestVerifyInquiry_EmptySecret — пустой пароль строки отклоняется
// до сетевого вызова.
func TestVerifyInquiry_EmptySecret(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	err := fx.front.VerifyInquiry(context.Background(), 1, "")
	require.Error(t, err)
	require.True(t, failure.IsKind(err, failure.Validation))
	require.Equal(t, 0, fx.backend.count("VerifyInquiry"))
	require.Contains(t, fx.notifier.all(), "비밀번호를 입력해주세요.")
}

// TestVerifyInquiry_Success_RetiresRow — успех монтирует карточку,
// отставляет строку и обновляет список на месте без повторной загрузки.
func TestVerifyInquiry_Success_RetiresRow(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.inquiryListFn = func(context.Context, int) (models.ListPage[models.InquirySummary], error) {
		return models.ListPage[models.InquirySummary]{
			Items: []models.InquirySummary{
				{RowID: 1, Name: "홍길동", Phone: "01012345678"},
				{RowID: 2, Name: "김수한", Phone: "01087654321"},
			},
			Pagination: models.PageInfo{CurrentPage: 1, TotalPages: 1, TotalItems: 2, PerPage: 15},
		}, nil
	}
	fx.backend.verifyInquiryFn = func(context.Context, int64, string) (*models.InquiryDetail, error) {
		return &models.InquiryDetail{Name: "홍길동", Question: "배송 문의"}, nil
	}

	require.NoError(t, fx.front.OpenInquiryList(context.Background(), 1))
	require.NoError(t, fx.front.VerifyInquiry(context.Background(), 1, "1234"))

	_, mounted := fx.front.Registry().Mounted(view.DialogInquiryDetail)
	require.True(t, mounted)

	vm := fx.renderer.lastData(view.DialogInquiryList).(InquiryListVM)
	require.True(t, vm.Items[0].EntryRetired)
	require.False(t, vm.Items[1].EntryRetired)

	// Список не перечитывался.
	require.Equal(t, 1, fx.backend.count("InquiryList"))
}

// TestVerifyInquiry_AuthFailure — неверный пароль лишь уведомляет,
// карточка не монтируется.
func TestVerifyInquiry_AuthFailure(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.verifyInquiryFn = func(context.Context, int64, string) (*models.InquiryDetail, error) {
		return nil, failure.New(failure.Auth, "비밀번호가 일치하지 않습니다.")
	}

	err := fx.front.VerifyInquiry(context.Background(), 1, "bad")
	require.Error(t, err)

	_, mounted := fx.front.Registry().Mounted(view.DialogInquiryDetail)
	require.False(t, mounted)
	require.Contains(t, fx.notifier.all(), "비밀번호가 일치하지 않습니다.")
}

// TestSubmitInquiry_MissingField — неполная форма отклоняется локально.
func TestSubmitInquiry_MissingField(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	err := fx.front.SubmitInquiry(context.Background(), models.InquiryInput{
		Name: "홍길동", Phone: "010", Email: "a@b.c", Message: "  ", Password: "1",
	})
	require.Error(t, err)
	require.True(t, failure.IsKind(err, failure.Validation))
	require.Equal(t, 0, fx.backend.count("SubmitInquiry"))
}

// TestSubmitInquiry_RefreshOnlyWhenListMounted — после успеха форма
// закрывается; публичный список перечитывается с первой страницы,
// только если он открыт.
func TestSubmitInquiry_RefreshOnlyWhenListMounted(t *testing.T) {
	t.Parallel()

	in := models.InquiryInput{
		Name: "홍길동", Phone: "01012345678", Email: "a@b.c",
		Message: "문의", Password: "1234",
	}

	t.Run("list_closed_no_refresh", func(t *testing.T) {
		t.Parallel()

		fx := newFixture()
		require.NoError(t, fx.front.OpenInquiryForm(context.Background()))
		require.NoError(t, fx.front.SubmitInquiry(context.Background(), in))

		require.Equal(t, 0, fx.backend.count("InquiryList"))
		_, mounted := fx.front.Registry().Mounted(view.DialogInquiryForm)
		require.False(t, mounted)
		require.Contains(t, fx.notifier.all(), "문의가 성공적으로 등록되었습니다.")
	})

	t.Run("list_open_refreshed_at_page_one", func(t *testing.T) {
		t.Parallel()

		fx := newFixture()
		var pages []int
		fx.backend.inquiryListFn = func(_ context.Context, page int) (models.ListPage[models.InquirySummary], error) {
			pages = append(pages, page)
			return models.ListPage[models.InquirySummary]{
				Items:      []models.InquirySummary{},
				Pagination: models.PageInfo{CurrentPage: page, TotalPages: 5, TotalItems: 70, PerPage: 15},
			}, nil
		}

		require.NoError(t, fx.front.OpenInquiryList(context.Background(), 3))
		require.NoError(t, fx.front.SubmitInquiry(context.Background(), in))

		require.Equal(t, []int{3, 1}, pages)
	})
}

// TestSubmitAnswer_RefreshesCurrentPage — ответ меняет строку на месте,
// админ-список перечитывается с текущей страницы.
func TestSubmitAnswer_RefreshesCurrentPage(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	var pages []int
	fx.backend.adminInquiryListFn = func(_ context.Context, pw string, page int) (models.ListPage[models.AdminInquiry], error) {
		pages = append(pages, page)
		return models.ListPage[models.AdminInquiry]{
			Items:      []models.AdminInquiry{},
			Pagination: models.PageInfo{CurrentPage: page, TotalPages: 4, TotalItems: 50, PerPage: 15},
		}, nil
	}

	require.NoError(t, fx.front.OpenAdminInquiries(context.Background(), "pw", 2))
	require.NoError(t, fx.front.SubmitAnswer(context.Background(), "pw", 7, "답변입니다"))

	require.Equal(t, []int{2, 2}, pages)
	_, mounted := fx.front.Registry().Mounted(view.DialogAnswerForm)
	require.False(t, mounted)
}

// TestDeleteMaterial_Declined — отказ в подтверждении: ни запроса,
// ни уведомления, ни обновления списка.
func TestDeleteMaterial_Declined(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.confirm.answer = false

	require.NoError(t, fx.front.DeleteMaterial(context.Background(), "pw", 3))

	require.Equal(t, 1, fx.confirm.asked)
	require.Equal(t, 0, fx.backend.count("DeleteMaterial"))
	require.Equal(t, 0, fx.backend.count("AdminMaterials"))
	require.Empty(t, fx.notifier.all())
}

// TestDeleteMaterial_Confirmed — после успеха список перечитывается
// с первой страницы.
func TestDeleteMaterial_Confirmed(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	require.NoError(t, fx.front.OpenAdminMaterials(context.Background(), "pw", 1))
	require.NoError(t, fx.front.DeleteMaterial(context.Background(), "pw", 3))

	require.Equal(t, 1, fx.backend.count("DeleteMaterial"))
	require.Equal(t, 2, fx.backend.count("AdminMaterials"))
}

// TestMutationRejectedBySuccessFlag — 2xx с success=false трактуется
// как отказ: уведомление с текстом сервера, список не перечитывается.
func TestMutationRejectedBySuccessFlag(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.setActiveFn = func(context.Context, string, int64, bool) (models.MutationResult, error) {
		return models.MutationResult{Success: false, Error: "자료를 찾을 수 없습니다."}, nil
	}

	err := fx.front.SetMaterialActive(context.Background(), "pw", 3, false)
	require.Error(t, err)
	require.Equal(t, 0, fx.backend.count("AdminMaterials"))
	require.Contains(t, fx.notifier.all(), "자료를 찾을 수 없습니다.")
}

// TestLoadMenu_FallbackOnError — при ошибке бэкенда возвращается
// статичное меню по умолчанию.
func TestLoadMenu_FallbackOnError(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.backend.menuFn = func(context.Context) ([]models.MenuSection, error) {
		return nil, failure.New(failure.Network, "")
	}

	sections := fx.front.LoadMenu(context.Background())
	require.Len(t, sections, 6)
	require.Equal(t, "HOME", sections[0].Main)
	require.Equal(t, "문의및답변", sections[4].Main)
	require.Equal(t, []string{"무역자료", "운송자료", "법규자료"}, sections[5].Sub)
}

// TestHandleMenuSelect_Unmapped — неизвестная пара подписей — no-op.
func TestHandleMenuSelect_Unmapped(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	require.NoError(t, fx.front.HandleMenuSelect(context.Background(), "SERVICES", "서비스1"))
	require.Empty(t, fx.front.Registry().Identities())
}

// TestHandleMenuSelect_OpensGate — пункт «답변등록» монтирует диалог
// ввода пароля, список не загружается.
func TestHandleMenuSelect_OpensGate(t *testing.T) {
	t.Parallel()

	fx := newFixture()

	require.NoError(t, fx.front.HandleMenuSelect(context.Background(), "문의및답변", "답변등록"))

	vm, ok := fx.renderer.lastData(view.DialogAdminInquiries).(AdminInquiriesVM)
	require.True(t, ok)
	require.False(t, vm.Loaded)
	require.Equal(t, 0, fx.backend.count("AdminInquiryList"))
}
