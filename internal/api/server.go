package api

import (
	"chordlab/internal/theory"
)

// Engine is the slice of the theory package the handlers need. Tests swap in
// a mock.
type Engine interface {
	ChordProgressions(key, scaleType string, capo int) (*theory.ProgressionSet, error)
	MelodyForProgression(key, scaleType string, chordNames []string) ([]theory.MelodyNote, error)
}

type Server struct {
	engine Engine
}

func NewServer(engine Engine) *Server {
	return &Server{engine: engine}
}

// TheoryEngine adapts the pure theory functions to the Engine interface.
type TheoryEngine struct{}

func (TheoryEngine) ChordProgressions(key, scaleType string, capo int) (*theory.ProgressionSet, error) {
	return theory.GenerateChordProgressions(key, scaleType, capo)
}

func (TheoryEngine) MelodyForProgression(key, scaleType string, chordNames []string) ([]theory.MelodyNote, error) {
	return theory.GenerateMelodyForProgression(key, scaleType, chordNames)
}
