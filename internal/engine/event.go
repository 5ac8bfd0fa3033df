package engine

// Event is a multicast event with no arguments.
type Event struct {
	listeners []func()
}

func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls listeners in registration order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multicast event with one argument
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
