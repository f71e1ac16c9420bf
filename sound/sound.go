package sound

import (
	"bytes"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"minesweep/misc"
)

const SampleRate = 44100
const BytesPerSample = 4

var TheSoundManager struct {
	Context *oto.Context

	volume     float64
	prevVolume float64

	muted bool

	effects [EffectSize][]byte

	tmpPlayers [EffectSize][]*Player

	contextReadyChan chan struct{}
	contextReady     bool

	disabled bool
}

// Init opens the audio device and renders every effect.
// When it fails the manager stays disabled and Play does nothing.
func Init(muted bool) error {
	sm := &TheSoundManager

	sm.volume = 1
	sm.prevVolume = 1
	sm.muted = muted

	contextOp := oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Millisecond * 50,
	}

	var err error
	sm.Context, sm.contextReadyChan, err = oto.NewContext(&contextOp)
	if err != nil {
		sm.disabled = true
		return err
	}

	for e := Effect(0); e < EffectSize; e++ {
		sm.effects[e] = Synthesize(e, SampleRate)
	}

	misc.InfoLogger.Print("sound initialized")

	return nil
}

func Update() {
	sm := &TheSoundManager

	if sm.disabled {
		return
	}

	if !sm.contextReady {
		select {
		case <-sm.contextReadyChan:
			sm.contextReady = true
		default:
			// pass
		}
	}

	// change volumes
	if sm.prevVolume != sm.volume {
		for _, players := range sm.tmpPlayers {
			for _, player := range players {
				player.player.SetVolume(player.volume * sm.volume)
			}
		}
	}

	sm.prevVolume = sm.volume
}

func GlobalVolume() float64 {
	sm := &TheSoundManager

	return sm.volume
}

func SetGlobalVolume(volume float64) {
	sm := &TheSoundManager
	sm.volume = min(max(volume, 0), 1)
}

func Muted() bool {
	return TheSoundManager.muted
}

func SetMuted(muted bool) {
	TheSoundManager.muted = muted
}

func IsSoundReady() bool {
	sm := &TheSoundManager
	return !sm.disabled && sm.contextReady
}

func Play(effect Effect, volume float64) {
	if !IsSoundReady() || Muted() {
		return
	}
	if effect < 0 || effect >= EffectSize {
		return
	}

	sm := &TheSoundManager

	for _, player := range sm.tmpPlayers[effect] {
		if !player.IsPlaying() {
			player.SetVolume(volume)
			player.Seek(0, io.SeekStart)
			player.Play()
			return
		}
	}

	// all players are busy, create new one
	tmpP := newPlayer(sm.effects[effect])
	tmpP.SetVolume(volume)
	tmpP.Play()

	sm.tmpPlayers[effect] = append(sm.tmpPlayers[effect], tmpP)
}

type Player struct {
	player *oto.Player
	volume float64
}

func newPlayer(audioBytes []byte) *Player {
	sm := &TheSoundManager

	player := new(Player)
	player.player = sm.Context.NewPlayer(bytes.NewReader(audioBytes))
	player.volume = 1

	const buffSizeTime = time.Second / 4
	buffSizeBytes := int(buffSizeTime) * SampleRate / int(time.Second) * BytesPerSample
	player.player.SetBufferSize(buffSizeBytes)

	return player
}

func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

func (p *Player) Play() {
	p.player.Play()
}

func (p *Player) Seek(offset int64, whence int) int64 {
	// seeking a bytes.Reader back to start can't fail
	pos, _ := p.player.Seek(offset, whence)
	return pos
}

func (p *Player) SetVolume(volume float64) {
	p.volume = min(max(volume, 0), 1)
	p.player.SetVolume(p.volume * GlobalVolume())
}
