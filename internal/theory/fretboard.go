package theory

import "fmt"

// Standard tuning, string 1 (high E) to string 6 (low E). Values are
// absolute semitones (octave*12 + pitch class), the same scale parseNote
// produces.
var openStrings = []struct {
	Number   int
	Semitone int
}{
	{1, 4*12 + 4},  // E4
	{2, 3*12 + 11}, // B3
	{3, 3*12 + 7},  // G3
	{4, 3*12 + 2},  // D3
	{5, 2*12 + 9},  // A2
	{6, 2*12 + 4},  // E2
}

// OutOfRangeTab marks a pitch below the lowest open string.
var OutOfRangeTab = TabPosition{StringNumber: 0, Fret: -1, Label: "(out of range)"}

// ConvertNoteToTab picks the lowest-fret position that can play the note,
// preferring the lower string number (higher-pitched string) on a fret tie.
// Pitches below open E2 get the out-of-range sentinel instead of an error.
func ConvertNoteToTab(note string) (TabPosition, error) {
	target, err := absoluteSemitone(note)
	if err != nil {
		return TabPosition{}, err
	}

	best := OutOfRangeTab
	for _, s := range openStrings {
		fret := target - s.Semitone
		if fret < 0 {
			continue
		}
		if best.StringNumber == 0 || fret < best.Fret {
			best = TabPosition{
				StringNumber: s.Number,
				Fret:         fret,
				Label:        fmt.Sprintf("String %d, fret %d", s.Number, fret),
			}
		}
	}
	return best, nil
}
