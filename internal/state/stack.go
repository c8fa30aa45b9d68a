// internal/state/stack.go
package state

import (
	"fmt"
	"io"
	"reflect"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Stack — упорядоченный набор экранов. Нижний элемент самый старый,
// верхний активен, остальные на паузе.
//
// Стек однопоточный: все операции выполняются в горутине игрового цикла.
// Состояние может из своего Update вызвать Push/Pop/Replace этого же
// стека; переход применяется сразу, внутри того же вызова Stack.Update.
//
// Если колбэк состояния паникует посреди перехода, стек не откатывается
// и дальше считается неопределённым.
type Stack struct {
	states []State
	logger *log.Logger
}

// Option настраивает Stack.
type Option func(*Stack)

// WithLogger включает debug-логирование переходов.
func WithLogger(l *log.Logger) Option {
	return func(s *Stack) {
		if l != nil {
			s.logger = l.WithPrefix("stack")
		}
	}
}

// NewStack создаёт пустой стек.
func NewStack(opts ...Option) *Stack {
	s := &Stack{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStackWith создаёт стек и кладёт в него initial обычным Push, так что
// первое состояние получает OnEnter.
func NewStackWith(initial State, opts ...Option) (*Stack, error) {
	if isNil(initial) {
		return nil, &StackError{Op: "new", Err: ErrNilState}
	}
	s := NewStack(opts...)
	s.push(initial)
	return s, nil
}

// Push кладёт состояние наверх: текущая вершина получает OnPause,
// затем новое состояние получает OnEnter.
func (s *Stack) Push(st State) error {
	if isNil(st) {
		return &StackError{Op: "push", Err: ErrNilState}
	}
	s.push(st)
	return nil
}

// Pop снимает верхнее состояние (OnExit), после чего новая вершина,
// если она есть, получает OnResume. На пустом стеке ничего не делает.
func (s *Stack) Pop() {
	s.pop(true)
}

// Replace заменяет верхнее состояние: старая вершина получает OnExit и
// удаляется, затем st кладётся как в Push. Состояние под заменённым
// OnResume не получает — сразу OnPause.
func (s *Stack) Replace(st State) error {
	if isNil(st) {
		return &StackError{Op: "replace", Err: ErrNilState}
	}
	s.pop(false)
	s.push(st)
	return nil
}

// Update передаёт dt только верхнему состоянию.
func (s *Stack) Update(dt float64) {
	if len(s.states) == 0 {
		return
	}
	// Ссылка на вершину берётся до вызова: Update может изменить стек.
	top := s.states[len(s.states)-1]
	top.Update(dt)
}

// Render рисует все состояния снизу вверх.
func (s *Stack) Render(screen *ebiten.Image) {
	for _, st := range s.states {
		st.Render(screen)
	}
}

// Top возвращает активное состояние.
func (s *Stack) Top() (State, error) {
	if len(s.states) == 0 {
		return nil, &StackError{Op: "top", Err: ErrEmptyStack}
	}
	return s.states[len(s.states)-1], nil
}

func (s *Stack) IsEmpty() bool {
	return len(s.states) == 0
}

func (s *Stack) Size() int {
	return len(s.states)
}

// Clear снимает все состояния сверху вниз при остановке хоста.
// Каждое получает OnExit; OnResume при этом никто не получает.
func (s *Stack) Clear() {
	for len(s.states) > 0 {
		s.pop(false)
	}
}

func (s *Stack) push(st State) {
	if n := len(s.states); n > 0 {
		s.states[n-1].OnPause()
	}
	s.states = append(s.states, st)
	s.logger.Debug("push", "state", name(st), "size", len(s.states))
	st.OnEnter()
}

func (s *Stack) pop(resume bool) {
	n := len(s.states)
	if n == 0 {
		return
	}
	top := s.states[n-1]
	top.OnExit()
	s.states[n-1] = nil
	s.states = s.states[:n-1]
	s.logger.Debug("pop", "state", name(top), "size", len(s.states))
	if resume && len(s.states) > 0 {
		s.states[len(s.states)-1].OnResume()
	}
}

// isNil ловит и nil-интерфейс, и типизированный nil-указатель внутри него.
func isNil(st State) bool {
	if st == nil {
		return true
	}
	v := reflect.ValueOf(st)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func name(st State) string {
	return fmt.Sprintf("%T", st)
}
