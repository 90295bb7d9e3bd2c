package maze

// Source yields uniform numbers in [0,1). An interface so tests can feed
// fixed sequences and replay exact carve orders.
type Source interface {
	Float64() float64
}

// xorshift32 (Marsaglia). Period 2^32-1, plenty for any playable grid.
type xorshift struct {
	state uint32
}

// NewSource seeds a 32-bit xorshift generator. Zero is the fixed point of
// xorshift, so it gets remapped.
func NewSource(seed uint32) Source {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &xorshift{state: seed}
}

func (x *xorshift) Float64() float64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5
	return float64(x.state>>8) / float64(1<<24)
}
