package preview

import (
	"log"
	"time"

	"git.lost.host/meutraa/beatgrid/internal/game"
	"git.lost.host/meutraa/beatgrid/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

type DefaultPreviewer struct {
	Theme theme.Theme
	Rate  float64 // playback speed, 1.0 is realtime
}

func tickBuffer(tick theme.Tick) (*beep.Buffer, error) {
	tone, err := generators.SineTone(sampleRate, tick.Frequency)
	if nil != err {
		return nil, errors.Wrap(err, "unable to create tick tone")
	}
	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buffer.Append(beep.Take(sampleRate.N(tick.Length), tone))
	return buffer, nil
}

// Play schedules each tick against a fixed anchor rather than sleeping
// beat lengths, so timer jitter does not accumulate over a long grid.
func (p *DefaultPreviewer) Play(markers []game.Marker) error {
	rate := p.Rate
	if rate <= 0 {
		rate = 1.0
	}

	major, err := tickBuffer(p.Theme.MajorTick())
	if nil != err {
		return err
	}
	minor, err := tickBuffer(p.Theme.MinorTick())
	if nil != err {
		return err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); nil != err {
		return errors.Wrap(err, "unable to initialise speaker")
	}
	defer speaker.Clear()

	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	anchor := time.Now()
	for _, m := range markers {
		target := anchor.Add(time.Duration(m.Time / rate * float64(time.Millisecond)))
		for {
			remaining := time.Until(target)
			if remaining <= 0 {
				break
			}
			select {
			case key, ok := <-keys:
				if !ok || key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
					return nil
				}
			case <-time.After(remaining):
			}
		}

		buffer := minor
		if m.Major {
			buffer = major
		}
		speaker.Play(buffer.Streamer(0, buffer.Len()))
	}

	// The speaker is cleared on return; let the last tick ring out first.
	time.Sleep(tailLength(p.Theme))

	return nil
}

// tailLength is how long the final tick needs after its marker time.
func tailLength(th theme.Theme) time.Duration {
	length := th.MajorTick().Length
	if minor := th.MinorTick().Length; minor > length {
		length = minor
	}
	return length
}
