package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

// sliceStreamer plays back a fixed set of samples
type sliceStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(out, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func constant(v float64, n int) *sliceStreamer {
	s := &sliceStreamer{samples: make([][2]float64, n)}
	for i := range s.samples {
		s.samples[i] = [2]float64{v, v}
	}
	return s
}

// TestOscillatorLength verifies the tone stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(100, 50*time.Millisecond, rate)

	buf := make([][2]float64, 30)
	n, ok := osc.Stream(buf)
	if n != 30 || !ok {
		t.Fatalf("first read = (%d, %v), want (30, true)", n, ok)
	}
	n, ok = osc.Stream(buf)
	if n != 20 || !ok {
		t.Fatalf("second read = (%d, %v), want (20, true)", n, ok)
	}
	n, ok = osc.Stream(buf)
	if n != 0 || ok {
		t.Errorf("drained read = (%d, %v), want (0, false)", n, ok)
	}
}

// TestOscillatorRange verifies samples stay within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	osc := newOscillator(440, 20*time.Millisecond, SampleRate)
	buf := make([][2]float64, 512)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d out of range or unbalanced: %v", i, buf[i])
		}
	}
}

// TestEnvelopeShape verifies the fade in and fade out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := newEnvelope(constant(1, 100), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	if buf[5][0] != 0.5 {
		t.Errorf("mid-attack sample = %v, want 0.5", buf[5][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, want 1", buf[50][0])
	}
	if buf[99][0] >= buf[85][0] || buf[99][0] <= 0 {
		t.Errorf("release not decreasing: %v -> %v", buf[85][0], buf[99][0])
	}
}

// TestBlipFrequency verifies the hue-to-pitch mapping
func TestBlipFrequency(t *testing.T) {
	tests := []struct {
		hue  float64
		want float64
	}{
		{0, 440},
		{180, 880},
		{360, 440},
		{-180, 880},
	}
	for _, tt := range tests {
		if got := BlipFrequency(tt.hue); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BlipFrequency(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

// TestBlipSilentAtZeroVolume verifies a zero-volume blip produces silence
func TestBlipSilentAtZeroVolume(t *testing.T) {
	s := Blip(90, 10*time.Millisecond, 0, SampleRate)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}

// TestTapSnapshotOrder verifies the ring buffer returns the most recent samples oldest first
func TestTapSnapshotOrder(t *testing.T) {
	src := &sliceStreamer{samples: make([][2]float64, 10)}
	for i := range src.samples {
		src.samples[i] = [2]float64{float64(i), float64(i)}
	}
	tap := NewTap(src, 4)

	buf := make([][2]float64, 10)
	if n, _ := tap.Stream(buf); n != 10 {
		t.Fatalf("streamed %d, want 10", n)
	}

	got := tap.Snapshot(3)
	want := []float64{7, 8, 9}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, got[i][0], want[i])
		}
	}
	if len(tap.Snapshot(100)) != 4 {
		t.Errorf("snapshot larger than ring: %d", len(tap.Snapshot(100)))
	}
}

// TestTapLevel verifies silence reads zero and full scale reads one
func TestTapLevel(t *testing.T) {
	quiet := NewTap(constant(0, 64), 64)
	loud := NewTap(constant(1, 64), 64)

	buf := make([][2]float64, 64)
	quiet.Stream(buf)
	loud.Stream(buf)

	if l := quiet.Level(64); l != 0 {
		t.Errorf("quiet level = %v, want 0", l)
	}
	if l := loud.Level(64); l != 1 {
		t.Errorf("loud level = %v, want 1", l)
	}
}

// TestMeterSmoothing verifies exponential smoothing toward the pushed level
func TestMeterSmoothing(t *testing.T) {
	m := Meter{Smoothing: 0.5}
	if v := m.Push(1); v != 0.5 {
		t.Errorf("first push = %v, want 0.5", v)
	}
	if v := m.Push(1); v != 0.75 {
		t.Errorf("second push = %v, want 0.75", v)
	}
}

// TestThrottle verifies events inside the interval are dropped
func TestThrottle(t *testing.T) {
	th := Throttle{Interval: 50 * time.Millisecond}
	t0 := time.Unix(0, 0)

	if !th.Allow(t0) {
		t.Error("first event should pass")
	}
	if th.Allow(t0.Add(10 * time.Millisecond)) {
		t.Error("event inside the interval should be dropped")
	}
	if !th.Allow(t0.Add(60 * time.Millisecond)) {
		t.Error("event after the interval should pass")
	}
}
