package theory

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is the random source used by melody generation. *math/rand.Rand
// satisfies it; tests substitute a scripted sequence.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

const (
	notesPerChord   = 4
	chordToneChance = 0.7
)

var melodyOctaves = []int{4, 5}

// GenerateMelodyForProgression produces one bar of quarter notes per chord
// name, biased toward chord tones. Each call draws fresh randomness: two
// calls with the same arguments legitimately differ.
//
// The key is normalized independently of any capo; melodies follow the
// named chords as given, not a transposed scale.
func GenerateMelodyForProgression(key, scaleType string, chordNames []string) ([]MelodyNote, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return GenerateMelodyWithRand(rng, key, scaleType, chordNames)
}

// GenerateMelodyWithRand is GenerateMelodyForProgression with the random
// source supplied by the caller.
func GenerateMelodyWithRand(rng Rand, key, scaleType string, chordNames []string) ([]MelodyNote, error) {
	scale, err := BuildScale(NormalizeKey(key), scaleType)
	if err != nil {
		return nil, err
	}

	melody := make([]MelodyNote, 0, len(chordNames)*notesPerChord)
	beat := 0
	for _, name := range chordNames {
		chord := ChordForName(scale, name)
		for i := 0; i < notesPerChord; i++ {
			var pc string
			if rng.Float64() < chordToneChance {
				note := chord.Notes[rng.Intn(len(chord.Notes))]
				pc = note[:len(note)-1]
			} else {
				pc = scale[rng.Intn(len(scale))]
			}
			octave := melodyOctaves[rng.Intn(len(melodyOctaves))]
			note := fmt.Sprintf("%s%d", pc, octave)

			tab, err := ConvertNoteToTab(note)
			if err != nil {
				return nil, err
			}
			melody = append(melody, MelodyNote{
				Note:     note,
				Duration: 1,
				Beat:     beat,
				Tab:      tab,
			})
			beat++
		}
	}
	return melody, nil
}
