package metrics

import (
	"encoding/json"
	"expvar"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameTimeAveragesLastWindow(t *testing.T) {
	m := NewFrame()

	for i := 0; i < avgCount; i++ {
		m.Update(0.020)
	}

	require.InDelta(t, 20.0, m.FrameTime(), 1e-9)
	require.EqualValues(t, avgCount, m.Frames())
}

func TestFrameTimeDoesNotAccumulateAcrossWindows(t *testing.T) {
	m := NewFrame()

	for i := 0; i < avgCount*3; i++ {
		m.Update(0.010)
	}

	require.InDelta(t, 10.0, m.FrameTime(), 1e-9)
}

func TestFPSCountsFramesPerSecond(t *testing.T) {
	m := NewFrame()

	// 1/16 с точно представима, шестнадцать кадров дают ровно секунду.
	for i := 0; i < 16; i++ {
		m.Update(0.0625)
	}

	require.Equal(t, 16.0, m.FPS())
}

func TestConcurrentReads(t *testing.T) {
	m := NewFrame()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = m.Snapshot()
		}
	}()
	for i := 0; i < 1000; i++ {
		m.Update(0.016)
		m.SetStackSize(i % 3)
	}
	wg.Wait()

	require.EqualValues(t, 1000, m.Frames())
}

func TestPublish(t *testing.T) {
	m := NewFrame()
	m.SetStackSize(2)
	m.Publish("metrics_test_frame")

	v := expvar.Get("metrics_test_frame")
	require.NotNil(t, v)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(v.String()), &got))
	require.EqualValues(t, 2, got["stack_size"])
}
