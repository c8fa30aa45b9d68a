// internal/metrics/metrics.go
package metrics

import (
	"expvar"

	"go.uber.org/atomic"
)

// avgCount — сколько кадров усредняется для времени кадра.
const avgCount = 30

// Frame считает FPS и среднее время кадра.
// Update вызывается из игрового цикла; геттеры безопасны из любой горутины
// (их читает expvar на debug-сервере).
type Frame struct {
	msTimes       [avgCount]float64
	counter       int
	accumulatedMS float64
	frames        int

	fps    atomic.Float64
	avgMS  atomic.Float64
	total  atomic.Int64
	states atomic.Int64
}

func NewFrame() *Frame {
	return &Frame{}
}

// Update учитывает один кадр длительностью frameSeconds.
func (m *Frame) Update(frameSeconds float64) {
	frameMS := frameSeconds * 1000.0
	m.msTimes[m.counter] = frameMS
	if m.counter == avgCount-1 {
		sum := 0.0
		for _, v := range m.msTimes {
			sum += v
		}
		m.avgMS.Store(sum / avgCount)
	}
	m.counter = (m.counter + 1) % avgCount

	m.accumulatedMS += frameMS
	m.frames++
	if m.accumulatedMS >= 1000 {
		m.fps.Store(float64(m.frames))
		m.accumulatedMS -= 1000
		m.frames = 0
	}

	m.total.Inc()
}

// SetStackSize запоминает глубину стека состояний после кадра.
func (m *Frame) SetStackSize(n int) {
	m.states.Store(int64(n))
}

func (m *Frame) FPS() float64 {
	return m.fps.Load()
}

func (m *Frame) FrameTime() float64 {
	return m.avgMS.Load()
}

func (m *Frame) Frames() int64 {
	return m.total.Load()
}

func (m *Frame) StackSize() int64 {
	return m.states.Load()
}

// Snapshot — значения для /debug/vars.
func (m *Frame) Snapshot() map[string]any {
	return map[string]any{
		"fps":           m.FPS(),
		"frame_time_ms": m.FrameTime(),
		"frames":        m.Frames(),
		"stack_size":    m.StackSize(),
	}
}

// Publish регистрирует метрики в expvar. Повторная регистрация того же
// имени паникует, поэтому вызывается один раз при старте.
func (m *Frame) Publish(name string) {
	expvar.Publish(name, expvar.Func(func() any { return m.Snapshot() }))
}
