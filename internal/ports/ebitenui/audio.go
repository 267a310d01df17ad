package ebitenui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// wavSound plays a decoded WAV clip. Each call starts a fresh player so
// overlapping matches do not cut each other off.
type wavSound struct {
	ctx *audio.Context
	pcm []byte
}

func newWavSound(raw []byte) (*wavSound, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound: %w", err)
	}
	return &wavSound{ctx: ctx, pcm: pcm}, nil
}

func (s *wavSound) PlayMatch() {
	s.ctx.NewPlayerFromBytes(s.pcm).Play()
}
