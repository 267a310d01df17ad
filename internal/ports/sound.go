package ports

// SoundPort plays short effects without blocking the frame loop.
type SoundPort interface {
	// PlayMatch plays the confirmation sound for a found pair.
	PlayMatch()
}

// NopSound discards every effect.
type NopSound struct{}

func (NopSound) PlayMatch() {}
