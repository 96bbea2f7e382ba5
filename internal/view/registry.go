// view — реестр смонтированных диалогов и состояние их сессий.
//
// Инвариант реестра: на одну логическую роль диалога (Identity)
// приходится не более одного смонтированного представления. Повторное
// открытие той же роли заменяет предыдущее представление, а не
// наслаивает новое: сначала teardown старого, затем монтирование.
package view

import "sync"

// Identity — логическая роль диалога; ключ синглтона в реестре.
type Identity string

const (
	DialogCompanyIntro   Identity = "company_intro"
	DialogCompanyHistory Identity = "company_history"
	DialogContact        Identity = "contact"
	DialogDirections     Identity = "directions"
	DialogInquiryForm    Identity = "inquiry_form"
	DialogInquiryList    Identity = "inquiry_list"
	DialogInquiryDetail  Identity = "inquiry_detail"
	DialogProgramFiles   Identity = "program_files"
	DialogAdminInquiries Identity = "admin_inquiries"
	DialogAnswerForm     Identity = "answer_form"
	DialogMaterials      Identity = "materials"
	DialogAdminMaterials Identity = "admin_materials"
	DialogMaterialForm   Identity = "material_form"
)

// Handle — смонтированное представление диалога.
type Handle struct {
	identity Identity
	content  string
	teardown func()
}

// Identity возвращает роль представления.
func (h *Handle) Identity() Identity { return h.identity }

// Content — текущее отрендеренное содержимое.
func (h *Handle) Content() string { return h.content }

// Registry — отображение роли диалога в текущее представление.
type Registry struct {
	mu      sync.Mutex
	mounted map[Identity]*Handle
}

func NewRegistry() *Registry {
	return &Registry{mounted: make(map[Identity]*Handle)}
}

// Open монтирует представление роли id, предварительно демонтируя
// существующее: teardown старого вызывается строго до публикации
// нового. Коллбек исполняется под блокировкой реестра и не должен
// обращаться к реестру.
func (r *Registry) Open(id Identity, content string, teardown func()) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev := r.mounted[id]; prev != nil && prev.teardown != nil {
		prev.teardown()
	}

	h := &Handle{identity: id, content: content, teardown: teardown}
	r.mounted[id] = h
	return h
}

// Update заменяет содержимое уже смонтированного представления
// без демонтажа (например, после «отставки» формы пароля в строке).
// Возвращает false, если роль не смонтирована.
func (r *Registry) Update(id Identity, content string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.mounted[id]
	if !ok {
		return false
	}

	h.content = content
	return true
}

// Close демонтирует представление роли id, если оно смонтировано.
func (r *Registry) Close(id Identity) bool {
	r.mu.Lock()
	h, ok := r.mounted[id]
	delete(r.mounted, id)
	r.mu.Unlock()

	if !ok {
		return false
	}

	if h.teardown != nil {
		h.teardown()
	}

	return true
}

// Mounted возвращает представление роли id, если оно смонтировано.
func (r *Registry) Mounted(id Identity) (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.mounted[id]
	return h, ok
}

// Identities — роли всех смонтированных представлений.
func (r *Registry) Identities() []Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]Identity, 0, len(r.mounted))
	for id := range r.mounted {
		ids = append(ids, id)
	}

	return ids
}
