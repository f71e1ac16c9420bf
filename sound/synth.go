package sound

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

type Effect int

const (
	EffectReveal Effect = iota
	EffectFlag
	EffectUnflag
	EffectExplode
	EffectWin
	EffectRestart

	EffectSize
)

func (e Effect) String() string {
	switch e {
	case EffectReveal:
		return "reveal"
	case EffectFlag:
		return "flag"
	case EffectUnflag:
		return "unflag"
	case EffectExplode:
		return "explode"
	case EffectWin:
		return "win"
	case EffectRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Synthesize renders effect as signed 16 bit little endian stereo PCM.
func Synthesize(effect Effect, sampleRate int) []byte {
	var s synth
	s.sampleRate = f64(sampleRate)

	switch effect {
	case EffectReveal:
		s.tone(0, 0.06, 660, 880, 0.5)
	case EffectFlag:
		s.tone(0, 0.05, 520, 520, 0.4)
		s.tone(0.05, 0.05, 780, 780, 0.4)
	case EffectUnflag:
		s.tone(0, 0.05, 780, 780, 0.4)
		s.tone(0.05, 0.05, 520, 520, 0.4)
	case EffectExplode:
		s.noise(0, 0.7, 0.8)
		s.tone(0, 0.5, 90, 40, 0.6)
	case EffectWin:
		notes := [...]float64{523.25, 659.25, 783.99, 1046.5}
		for i, freq := range notes {
			s.tone(f64(i)*0.1, 0.18, freq, freq, 0.35)
		}
	case EffectRestart:
		s.tone(0, 0.08, 300, 600, 0.4)
	}

	return s.encode()
}

type synth struct {
	sampleRate float64
	samples    []float64
}

func f64(n int) float64 {
	return float64(n)
}

func (s *synth) ensure(end int) {
	if end > len(s.samples) {
		s.samples = append(s.samples, make([]float64, end-len(s.samples))...)
	}
}

// tone adds a sine that slides from freqFrom to freqTo with an exponential decay.
func (s *synth) tone(start, duration, freqFrom, freqTo, amp float64) {
	first := int(start * s.sampleRate)
	count := int(duration * s.sampleRate)
	s.ensure(first + count)

	phase := 0.0
	for i := range count {
		t := f64(i) / f64(count)
		freq := freqFrom + (freqTo-freqFrom)*t

		phase += 2 * math.Pi * freq / s.sampleRate
		env := math.Exp(-4*t) * min(1, f64(i)/(s.sampleRate*0.004))

		s.samples[first+i] += math.Sin(phase) * amp * env
	}
}

// noise adds low passed white noise with a fixed seed.
func (s *synth) noise(start, duration, amp float64) {
	first := int(start * s.sampleRate)
	count := int(duration * s.sampleRate)
	s.ensure(first + count)

	rng := rand.New(rand.NewPCG(0x6d696e65, 0x626f6f6d))

	prev := 0.0
	for i := range count {
		t := f64(i) / f64(count)
		prev += (rng.Float64()*2 - 1 - prev) * 0.2

		s.samples[first+i] += prev * amp * math.Exp(-5*t)
	}
}

func (s *synth) encode() []byte {
	out := make([]byte, len(s.samples)*BytesPerSample)

	for i, v := range s.samples {
		v = min(max(v, -1), 1)
		sample := uint16(int16(v * math.MaxInt16))

		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}

	return out
}
