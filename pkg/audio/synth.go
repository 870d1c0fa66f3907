package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// PCM format produced by Synth
const (
	DefaultSampleRate = 44100
	Channels          = 1
	BytesPerSample    = 2
)

// Point is a breakpoint of a piecewise linear ramp, at T seconds
type Point struct {
	T, V float64
}

// Ramp is a piecewise linear ramp. Before the first point and after the last
// the value is held.
type Ramp []Point

// At returns the ramp value at t
func (r Ramp) At(t float64) float64 {
	if len(r) == 0 {
		return 0
	}
	if t <= r[0].T {
		return r[0].V
	}
	for i := 1; i < len(r); i++ {
		if t <= r[i].T {
			a, b := r[i-1], r[i]
			if b.T == a.T {
				return b.V
			}
			return a.V + (b.V-a.V)*(t-a.T)/(b.T-a.T)
		}
	}
	return r[len(r)-1].V
}

// Tone is a sine oscillator shaped by a frequency and a gain ramp
type Tone struct {
	Duration  float64
	Frequency Ramp
	Gain      Ramp
}

// Synth renders tones to signed 16-bit little-endian mono PCM
type Synth struct {
	SampleRate int
	rng        *rand.Rand
}

// NewSynth creates a synth. A nil rng is seeded randomly.
func NewSynth(sampleRate int, rng *rand.Rand) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synth{SampleRate: sampleRate, rng: rng}
}

// PingTone is a short blip at a random pitch between 220 and 880 Hz
func (s *Synth) PingTone() Tone {
	freq := 220 + s.rng.Float64()*660
	return Tone{
		Duration:  0.20,
		Frequency: Ramp{{0, freq}},
		Gain:      Ramp{{0, 0}, {0.10, 0.25}, {0.20, 0}},
	}
}

// BallOutTone holds 440 Hz then falls to 220 Hz
func (s *Synth) BallOutTone() Tone {
	return Tone{
		Duration:  0.35,
		Frequency: Ramp{{0, 440}, {0.10, 440}, {0.35, 220}},
		Gain:      Ramp{{0, 0}, {0.10, 0.25}, {0.35, 0}},
	}
}

// Ping renders PingTone
func (s *Synth) Ping() []byte {
	return s.Render(s.PingTone())
}

// BallOut renders BallOutTone
func (s *Synth) BallOut() []byte {
	return s.Render(s.BallOutTone())
}

// Render samples tone. Phase is accumulated so frequency sweeps stay continuous.
func (s *Synth) Render(tone Tone) []byte {
	n := int(math.Round(tone.Duration * float64(s.SampleRate)))
	buf := make([]byte, n*BytesPerSample)
	step := 1 / float64(s.SampleRate)

	var phase float64
	for i := 0; i < n; i++ {
		t := float64(i) * step
		sample := math.Sin(2*math.Pi*phase) * tone.Gain.At(t)
		phase += tone.Frequency.At(t) * step
		phase -= math.Floor(phase)

		v := int16(math.Max(-1, math.Min(1, sample)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*BytesPerSample:], uint16(v))
	}
	return buf
}
