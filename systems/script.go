package systems

import "fmt"

// Step holds a key snapshot for a number of frames.
type Step struct {
	Frames int
	Keys   KeySet
}

// Script is a fixed sequence of inputs used to drive headless runs.
type Script struct {
	steps []Step
	total int
}

// NewScript builds a script from steps. Steps with no frames are dropped.
func NewScript(steps ...Step) *Script {
	s := &Script{}
	for _, st := range steps {
		if st.Frames <= 0 {
			continue
		}
		s.steps = append(s.steps, st)
		s.total += st.Frames
	}
	return s
}

// ParseStep builds a step from config values.
func ParseStep(frames int, keys []string) (Step, error) {
	if frames < 0 {
		return Step{}, fmt.Errorf("negative frame count %d", frames)
	}
	ks, err := ParseKeySet(keys)
	if err != nil {
		return Step{}, err
	}
	return Step{Frames: frames, Keys: ks}, nil
}

// Len returns the number of frames the script covers.
func (s *Script) Len() int {
	return s.total
}

// At returns the keys held on frame (0-based). Frames past the end hold
// nothing.
func (s *Script) At(frame int) KeySet {
	if frame < 0 {
		return 0
	}
	for _, st := range s.steps {
		if frame < st.Frames {
			return st.Keys
		}
		frame -= st.Frames
	}
	return 0
}
