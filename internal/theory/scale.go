package theory

// Semitone offsets from the root for each supported scale type.
var scaleOffsets = map[string][]int{
	"major": {0, 2, 4, 5, 7, 9, 11},
	"minor": {0, 2, 3, 5, 7, 8, 10},
}

// BuildScale returns the seven pitch classes of the given scale, degree 1
// first. The root must already be normalized; an unknown root is the only
// failure mode. Unknown scale types fall back to major, matching the shell's
// "anything that is not minor is major" rule.
func BuildScale(root, scaleType string) ([]string, error) {
	idx, err := pitchClassIndex(root)
	if err != nil {
		return nil, err
	}
	offsets, ok := scaleOffsets[scaleType]
	if !ok {
		offsets = scaleOffsets["major"]
	}
	scale := make([]string, len(offsets))
	for i, off := range offsets {
		scale[i] = pitchClassNames[(idx+off)%12]
	}
	return scale, nil
}
