package engine

import (
	"sync"

	"odyssey-engine/internal/domain"
)

// EventHub раздаёт события действий подписчикам (рендер, звук, журнал).
// Fire-and-forget: медленный канальный подписчик теряет события, а не тормозит ход.
type EventHub struct {
	mu       sync.RWMutex
	channels []chan domain.ActionEvent
	funcs    []func(domain.ActionEvent)
	closed   bool
}

func NewEventHub() *EventHub {
	return &EventHub{
		channels: make([]chan domain.ActionEvent, 0),
		funcs:    make([]func(domain.ActionEvent), 0),
	}
}

// Subscribe создает буферизированный канал подписчика.
func (h *EventHub) Subscribe(buffer int) <-chan domain.ActionEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.ActionEvent, buffer)
	if h.closed {
		close(ch)
		return ch
	}
	h.channels = append(h.channels, ch)
	return ch
}

// SubscribeFunc registers a callback invoked synchronously on Publish.
func (h *EventHub) SubscribeFunc(fn func(domain.ActionEvent)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.funcs = append(h.funcs, fn)
}

// Publish отправляет событие всем. Не блокируется.
func (h *EventHub) Publish(ev domain.ActionEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for _, fn := range h.funcs {
		fn(ev)
	}
	for _, ch := range h.channels {
		select {
		case ch <- ev:
		default:
			// канал полон, событие теряется
		}
	}
}

// Close закрывает все каналы. Повторный вызов безопасен.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, ch := range h.channels {
		close(ch)
	}
	h.channels = nil
}

// SubscriberCount возвращает количество активных подписчиков.
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels) + len(h.funcs)
}
