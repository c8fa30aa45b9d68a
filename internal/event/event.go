// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher — синхронный диспетчер событий хоста. Вызывается только из
// горутины игрового цикла.
type Dispatcher struct {
	subs   map[EventType][]subscription
	nextID uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: make(map[EventType][]subscription),
	}
}

// Subscribe подписывает listener на eventType и возвращает функцию
// отписки. Повторный вызов отписки ничего не делает.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.subs[eventType] = append(d.subs[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

// Listeners — число подписчиков на eventType.
func (d *Dispatcher) Listeners(eventType EventType) int {
	return len(d.subs[eventType])
}

// Dispatch отправляет событие подписчикам в порядке подписки. Отписка
// внутри обработчика на текущую рассылку не влияет.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.subs[event.Type] {
		s.listener.OnEvent(event)
	}
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	subs := d.subs[eventType]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		// Новый срез: идущий Dispatch дочитывает старый.
		rest := append(subs[:i:i], subs[i+1:]...)
		if len(rest) == 0 {
			delete(d.subs, eventType)
		} else {
			d.subs[eventType] = rest
		}
		return
	}
}
