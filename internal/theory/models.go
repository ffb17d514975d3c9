package theory

// Chord is a triad built on one scale degree. Notes are pitch-class+octave
// strings (root, third, fifth) at a fixed octave.
type Chord struct {
	Degree int      `json:"degree"`
	Name   string   `json:"name"`
	Notes  []string `json:"notes"`
}

// Progression is one catalog pattern rendered against a concrete scale.
type Progression struct {
	Label   string  `json:"label"`
	Degrees []int   `json:"degrees"`
	Chords  []Chord `json:"chords"`
}

// ProgressionSet is the full response for one key: the working scale plus
// every catalog pattern rendered against it.
type ProgressionSet struct {
	Key          string        `json:"key"`
	Capo         int           `json:"capo"`
	CapoKey      string        `json:"capoKey"`
	ScaleType    string        `json:"scaleType"`
	Scale        []string      `json:"scale"`
	Progressions []Progression `json:"progressions"`
}

// TabPosition is a playable position on the fretboard, or the out-of-range
// sentinel (string 0, fret -1) when the pitch sits below the lowest open
// string.
type TabPosition struct {
	StringNumber int    `json:"stringNumber"`
	Fret         int    `json:"fret"`
	Label        string `json:"label"`
}

// MelodyNote is one generated quarter note with its position in the
// progression and on the fretboard.
type MelodyNote struct {
	Note     string      `json:"note"`
	Duration int         `json:"duration"`
	Beat     int         `json:"beat"`
	Tab      TabPosition `json:"tab"`
}
