package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-canvas/internal/audio"
	"github.com/iburimskiy/particle-canvas/internal/config"
)

var errUnsupported = errors.New("unsupported file type")

// player owns the speaker: spawn blips and an optional soundtrack share one
// mixer so the speaker is initialized once.
type player struct {
	ready bool
	mixer *beep.Mixer

	// soundtrack
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *audio.Tap
	meter    audio.Meter
	duration time.Duration
	paused   bool
	gen      int64
	ended    atomic.Int64 // generation of the last track that drained

	blips audio.Throttle
}

func newPlayer() *player {
	return &player{
		meter: audio.Meter{Smoothing: config.SmoothingFactor},
		blips: audio.Throttle{Interval: config.BlipCooldown},
	}
}

func (p *player) init() error {
	if p.ready {
		return nil
	}
	p.mixer = &beep.Mixer{}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// blip plays a spawn tone unless one was queued within the cooldown.
func (p *player) blip(hue float64, now time.Time) error {
	if !p.blips.Allow(now) {
		return nil
	}
	if err := p.init(); err != nil {
		return err
	}
	speaker.Lock()
	p.mixer.Add(audio.Blip(hue, config.BlipDuration, config.BlipVolume, audio.SampleRate))
	speaker.Unlock()
	return nil
}

func (p *player) openDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return p.load(filename)
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupported, ext)
	}
}

func (p *player) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if err := p.init(); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return err
	}
	p.stop()

	// streamer -> resample -> tap -> ctrl -> mixer
	var src beep.Streamer = streamer
	if format.SampleRate != audio.SampleRate {
		src = beep.Resample(4, format.SampleRate, audio.SampleRate, streamer)
	}
	tap := audio.NewTap(src, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.tap = tap
	p.ctrl = ctrl
	p.paused = false
	p.duration = format.SampleRate.D(streamer.Len())
	p.gen++
	gen := p.gen

	speaker.Lock()
	p.mixer.Add(beep.Seq(ctrl, beep.Callback(func() {
		// speaker goroutine; resources are released on the next tick
		p.ended.Store(gen)
	})))
	speaker.Unlock()

	log.Printf("playing %s (%s)", filepath.Base(path), formatDuration(p.duration))
	return nil
}

// stop detaches and closes the current soundtrack.
func (p *player) stop() {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Streamer = nil
		speaker.Unlock()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	if p.file != nil {
		_ = p.file.Close()
	}
	p.file, p.streamer, p.ctrl, p.tap = nil, nil, nil, nil
	p.duration = 0
}

func (p *player) togglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// update runs once per tick on the window loop.
func (p *player) update() {
	if p.streamer != nil && p.ended.Load() == p.gen {
		p.stop()
	}
	if p.tap == nil {
		p.meter.Push(0)
		return
	}
	p.meter.Push(p.tap.Level(2048))
}

func (p *player) position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *player) playing() bool { return p.streamer != nil }
