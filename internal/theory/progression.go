package theory

// The progression catalog. Two entries use the same degrees {1,4,5,6} in
// different orders and stay separate on purpose: order is what makes them
// sound different.
var progressionCatalog = []struct {
	Label   string
	Degrees []int
}{
	{"Pop I–V–vi–IV", []int{1, 5, 6, 4}},
	{"50s I–vi–IV–V", []int{1, 6, 4, 5}},
	{"Jazz ii–V–I", []int{2, 5, 1}},
	{"Ballad I–vi–ii–V", []int{1, 6, 2, 5}},
	{"Blues I–IV–V–IV", []int{1, 4, 5, 4}},
}

// GenerateChordProgressions renders the whole catalog for a key. The capo
// amount transposes the working key upward before the scale is built, so
// every returned chord is spelled in the sounding (capo) key. Recomputed on
// every call; there is nothing worth caching.
func GenerateChordProgressions(key, scaleType string, capo int) (*ProgressionSet, error) {
	normalized := NormalizeKey(key)
	capoKey, err := ShiftPitchClass(normalized, capo)
	if err != nil {
		return nil, err
	}
	scale, err := BuildScale(capoKey, scaleType)
	if err != nil {
		return nil, err
	}

	progressions := make([]Progression, 0, len(progressionCatalog))
	for _, entry := range progressionCatalog {
		chords := make([]Chord, 0, len(entry.Degrees))
		for _, degree := range entry.Degrees {
			chords = append(chords, BuildChordTriad(scale, degree))
		}
		progressions = append(progressions, Progression{
			Label:   entry.Label,
			Degrees: entry.Degrees,
			Chords:  chords,
		})
	}

	return &ProgressionSet{
		Key:          normalized,
		Capo:         capo,
		CapoKey:      capoKey,
		ScaleType:    scaleType,
		Scale:        scale,
		Progressions: progressions,
	}, nil
}
