package metrics

import "github.com/san-kum/numint/internal/ode"

// StepSize watches the spacing of the samples it sees. On an adaptive
// run this is the accepted step-size profile.
type StepSize struct {
	name     string
	prev     float64
	started  bool
	count    int
	sum      float64
	min, max float64
}

func NewStepSize() *StepSize {
	return &StepSize{name: "step_size"}
}

func (s *StepSize) Name() string { return s.name }

func (s *StepSize) Observe(x ode.State, t float64) {
	if !s.started {
		s.prev = t
		s.started = true
		return
	}
	h := t - s.prev
	s.prev = t

	if s.count == 0 || h < s.min {
		s.min = h
	}
	if s.count == 0 || h > s.max {
		s.max = h
	}
	s.sum += h
	s.count++
}

// Value is the mean accepted step size.
func (s *StepSize) Value() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func (s *StepSize) Min() float64 { return s.min }
func (s *StepSize) Max() float64 { return s.max }

func (s *StepSize) Reset() {
	s.prev = 0
	s.started = false
	s.count = 0
	s.sum = 0
	s.min = 0
	s.max = 0
}
