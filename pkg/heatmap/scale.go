package heatmap

// BandScale maps an ordinal domain onto contiguous pixel bands with
// fractional padding between and around them.
type BandScale struct {
	domain []string
	index  map[string]int

	start, end float64
	padding    float64

	step      float64
	bandwidth float64
	offset    float64
}

// NewBandScale builds a band scale over [start, end]. padding is the
// fraction of one step left empty between bands (and as outer padding).
func NewBandScale(domain []string, start, end, padding float64) *BandScale {
	s := &BandScale{
		domain:  domain,
		index:   make(map[string]int, len(domain)),
		start:   start,
		end:     end,
		padding: padding,
	}
	for i, name := range domain {
		s.index[name] = i
	}

	n := float64(len(domain))
	if n == 0 {
		return s
	}
	s.step = (end - start) / (n + padding)
	s.bandwidth = s.step * (1 - padding)
	s.offset = start + s.step*padding

	return s
}

// Domain returns the ordinal domain in order.
func (s *BandScale) Domain() []string {
	return s.domain
}

// Bandwidth returns the pixel width of one band.
func (s *BandScale) Bandwidth() float64 {
	return s.bandwidth
}

// Pos returns the starting pixel position of the named band. It reports
// false for names outside the domain.
func (s *BandScale) Pos(name string) (float64, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.PosIndex(i), true
}

// PosIndex returns the starting pixel position of band i.
func (s *BandScale) PosIndex(i int) float64 {
	return s.offset + float64(i)*s.step
}
