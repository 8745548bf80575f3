package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Smoothed is an exponential moving average. The first sample is taken as is.
type Smoothed struct {
	Factor float64

	value float64
	set   bool
}

func (s *Smoothed) Add(v float64) float64 {
	if !s.set {
		s.value, s.set = v, true
		return s.value
	}
	s.value = Lerp(s.value, v, s.Factor)
	return s.value
}

func (s *Smoothed) Value() float64 {
	return s.value
}
