// Package ram provides the fixed-size, zero-initialized RAM block the
// bus uses for high RAM. Unlike a map-backed store, a RAM block
// here is a plain byte slice: every address in range is always present,
// matching real hardware where uninitialized RAM still reads as some
// byte rather than "not found".
package ram

// RAM is a fixed-size block of byte-addressable memory.
type RAM struct {
	data []byte
}

// New returns a RAM block of the given size, zero-initialized.
func New(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

// Read returns the byte at address, relative to the start of the block.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write stores value at address, relative to the start of the block.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[int(address)%len(r.data)] = value
}

// Len returns the number of addressable bytes in the block.
func (r *RAM) Len() int {
	return len(r.data)
}
