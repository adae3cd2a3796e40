package abits

import "unsafe"

// wordSize is the size in bytes of a single digit.
const wordSize = unsafe.Sizeof(Word(0))

// wordAddr returns the address of d's idx'th digit slot, including one
// past the last (idx == len(d)), which is used only to compute a
// half-open address range for overlap detection — that address is never
// dereferenced.
func wordAddr(d []Word, idx int) uintptr {
	p := unsafe.SliceData(d)
	if p == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(p)) + uintptr(idx)*wordSize
}
