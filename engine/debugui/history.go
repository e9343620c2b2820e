package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	offset  int
	count   int
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, max(size, 1))}
}

func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len returns the number of samples pushed so far, up to the capacity.
func (h *History) Len() int {
	return h.count
}

// Samples returns the full ring ordered oldest to newest. Slots never written
// are zero and come first.
func (h *History) Samples() []float32 {
	out := make([]float32, len(h.samples))
	copy(out, h.samples[h.offset:])
	copy(out[len(h.samples)-h.offset:], h.samples[:h.offset])
	return out
}

// Average is the mean of the samples pushed so far.
func (h *History) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Last(h.count) {
		sum += v
	}
	return sum / float32(h.count)
}

// Max is the largest sample pushed so far.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.Last(h.count) {
		m = max(m, v)
	}
	return m
}

// Last returns up to n of the newest samples, oldest first.
func (h *History) Last(n int) []float32 {
	n = min(n, h.count)
	all := h.Samples()
	return all[len(all)-n:]
}
