package analysis

import "strconv"

// MacroLimit is the maximum number of distinct macros that may appear in
// conditional directives during one analysis run. It matches the fixed width
// of BitSet; exceeding it is a hard failure, never a silent reallocation.
const MacroLimit = 128

// BitSet is a fixed-width bit vector indexed by macro ID.
type BitSet [2]uint64

// Set sets bit i.
func (b *BitSet) Set(i int) { b[i>>6] |= 1 << (uint(i) & 63) }

// Clear clears bit i.
func (b *BitSet) Clear(i int) { b[i>>6] &^= 1 << (uint(i) & 63) }

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }

// Bits returns the indices of all set bits in ascending order.
func (b *BitSet) Bits() []int {
	var bits []int
	for i := 0; i < MacroLimit; i++ {
		if b.Test(i) {
			bits = append(bits, i)
		}
	}
	return bits
}

// String returns the set bit indices as "{1, 5, 9}".
func (b *BitSet) String() string {
	s := "{"
	for i, bit := range b.Bits() {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(bit)
	}
	return s + "}"
}
