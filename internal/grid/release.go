package grid

import "sync"

// ReleaseHub рассылает отпускания указателя, случившиеся где угодно, в том числе
// за пределами сетки. Один на процесс, сетки подписываются при монтировании.
type ReleaseHub struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewReleaseHub() *ReleaseHub {
	return &ReleaseHub{subs: make(map[int]func())}
}

// Subscribe регистрирует fn. Возвращаемая функция удаляет подписку,
// повторный вызов безопасен.
func (h *ReleaseHub) Subscribe(fn func()) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Release уведомляет всех подписчиков
func (h *ReleaseHub) Release() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribers количество активных подписок
func (h *ReleaseHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
