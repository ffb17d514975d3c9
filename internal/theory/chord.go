package theory

import (
	"fmt"
	"strings"
)

// Triad qualities per scale degree. Which table applies is decided once per
// scale (see scaleIsMajor), not per chord; this keeps chord naming in sync
// with the progression catalog.
var (
	majorQualities = []string{"", "m", "m", "", "", "m", "dim"}
	minorQualities = []string{"m", "dim", "", "m", "m", "", ""}
)

const triadOctave = 4

// scaleIsMajor classifies the whole scale by the interval between its first
// and third members: a major third (4 semitones) means the major quality
// table applies to every degree.
func scaleIsMajor(scale []string) bool {
	rootIdx, err1 := pitchClassIndex(scale[0])
	thirdIdx, err2 := pitchClassIndex(scale[2])
	if err1 != nil || err2 != nil {
		return true
	}
	return ((thirdIdx-rootIdx)+12)%12 == 4
}

func qualitySuffix(quality string) string {
	switch quality {
	case "m":
		return "m"
	case "dim":
		return "°"
	default:
		return ""
	}
}

// BuildChordTriad builds the triad on the given scale degree (1-7): root,
// third and fifth stacked from alternating scale members, all at a fixed
// octave. No inversions or voice leading.
func BuildChordTriad(scale []string, degree int) Chord {
	i := degree - 1
	root := scale[i%7]
	third := scale[(i+2)%7]
	fifth := scale[(i+4)%7]

	qualities := minorQualities
	if scaleIsMajor(scale) {
		qualities = majorQualities
	}

	return Chord{
		Degree: degree,
		Name:   root + qualitySuffix(qualities[i%7]),
		Notes: []string{
			fmt.Sprintf("%s%d", root, triadOctave),
			fmt.Sprintf("%s%d", third, triadOctave),
			fmt.Sprintf("%s%d", fifth, triadOctave),
		},
	}
}

// ChordForName resolves a chord name such as "Am" or "B°" back to its degree
// in the given scale and rebuilds the triad there. A name whose root is not
// in the scale resolves to the tonic chord: callers handing us a chord from
// another key get a playable substitute rather than an error.
func ChordForName(scale []string, name string) Chord {
	root := strings.TrimRight(name, "m°")
	for i, pc := range scale {
		if pc == root {
			return BuildChordTriad(scale, i+1)
		}
	}
	return BuildChordTriad(scale, 1)
}
