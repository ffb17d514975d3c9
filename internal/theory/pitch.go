package theory

import (
	"errors"
	"fmt"
	"strings"
)

// The 12 pitch classes in canonical sharp spelling. Index order matters:
// absolute semitone values and all interval math derive from it.
var pitchClassNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Flat spellings accepted on input, normalized to sharps before any lookup.
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var (
	ErrUnsupportedNote   = errors.New("unsupported note")
	ErrInvalidNoteFormat = errors.New("invalid note format")
)

// NormalizeKey trims whitespace, capitalizes the first character ("db" ->
// "Db") and maps flat spellings to their sharp equivalents. Anything not in
// the flat table passes through unchanged; validation happens later when the
// key is resolved to a pitch-class index.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}
	key = strings.ToUpper(key[:1]) + key[1:]
	if sharp, ok := flatToSharp[key]; ok {
		return sharp
	}
	return key
}

func pitchClassIndex(name string) (int, error) {
	for i, pc := range pitchClassNames {
		if pc == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedNote, name)
}

// ShiftPitchClass returns the pitch class semitones above root, wrapping
// around the octave. Negative shifts are allowed.
func ShiftPitchClass(root string, semitones int) (string, error) {
	idx, err := pitchClassIndex(root)
	if err != nil {
		return "", err
	}
	shift := ((semitones % 12) + 12) % 12
	return pitchClassNames[(idx+shift)%12], nil
}

// parseNote splits a note string such as "C#4" into its pitch-class index
// and octave. Only single-digit octaves exist in this system.
func parseNote(note string) (pcIndex, octave int, err error) {
	if len(note) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, note)
	}
	last := note[len(note)-1]
	if last < '0' || last > '9' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, note)
	}
	name := note[:len(note)-1]
	if len(name) != 1 && !(len(name) == 2 && name[1] == '#') {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNoteFormat, note)
	}
	idx, err := pitchClassIndex(name)
	if err != nil {
		return 0, 0, err
	}
	return idx, int(last - '0'), nil
}

// absoluteSemitone converts a note string to its absolute semitone value
// (octave*12 + pitch class), the ordering used by melody and fretboard code.
func absoluteSemitone(note string) (int, error) {
	idx, octave, err := parseNote(note)
	if err != nil {
		return 0, err
	}
	return octave*12 + idx, nil
}
