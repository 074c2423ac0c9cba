package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ebitenAudioSampleRate is the rate the Ebitengine audio context is opened
// at; the APU already resamples to 44.1kHz internally (spec.md §2), so this
// must match that target exactly or playback pitch drifts.
const ebitenAudioSampleRate = 44100

// AudioPlayer drains the machine's resampled float32 mono stream into an
// Ebitengine audio.Player, completing the wiring the teacher's own
// dependency on ebiten/v2/audio never finished (see DESIGN.md).
type AudioPlayer struct {
	ctx     *audio.Context
	player  *audio.Player
	stream  *sampleStream
	enabled bool
	volume  float64
}

// sampleStream is the io.Reader Ebitengine's audio.Player pulls signed
// 16-bit stereo PCM bytes from. Push appends newly resampled samples;
// Read starves with silence rather than blocking when the backlog is
// empty, so a slow emulation frame never stalls the audio callback.
type sampleStream struct {
	pending []byte
}

func (s *sampleStream) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// push converts a batch of [-1,1] float32 mono samples into interleaved
// stereo PCM16 and appends it to the backlog.
func (s *sampleStream) push(samples []float32, volume float64) {
	buf := make([]byte, 0, len(samples)*4)
	for _, f := range samples {
		v := float64(f) * volume
		switch {
		case v > 1:
			v = 1
		case v < -1:
			v = -1
		}
		pcm := int16(v * 32767)
		lo, hi := byte(pcm), byte(pcm>>8)
		buf = append(buf, lo, hi, lo, hi) // duplicate mono sample across L/R
	}
	s.pending = append(s.pending, buf...)
}

// NewAudioPlayer opens an Ebitengine audio context gated by
// config.Audio.Enabled. When audio is disabled, Push becomes a no-op
// rather than failing, so callers don't need to branch on it.
func NewAudioPlayer(cfg *Config) (*AudioPlayer, error) {
	if cfg == nil || !cfg.Audio.Enabled {
		return &AudioPlayer{}, nil
	}

	stream := &sampleStream{}
	ctx := audio.NewContext(ebitenAudioSampleRate)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create ebiten audio player: %w", err)
	}

	volume := clampVolume(float64(cfg.Audio.Volume))
	player.SetVolume(volume)
	player.Play()

	return &AudioPlayer{ctx: ctx, player: player, stream: stream, enabled: true, volume: volume}, nil
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Push enqueues freshly resampled audio samples drained from the machine
// this frame. No-op when audio output is disabled.
func (p *AudioPlayer) Push(samples []float32) {
	if p == nil || !p.enabled || len(samples) == 0 {
		return
	}
	p.stream.push(samples, p.volume)
}
