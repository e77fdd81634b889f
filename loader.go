package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// loadImage reads an LC-3 object image into memory and returns its
// origin. The first big-endian word is the origin address and the rest
// of the file is loaded contiguously from there. Later images win on
// overlapping addresses.
func loadImage(mem *Memory, path string) (origin uint16, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(b) < 2 {
		return 0, fmt.Errorf("%s: truncated image header", path)
	}
	if len(b)%2 != 0 {
		return 0, fmt.Errorf("%s: odd-length image", path)
	}
	origin = binary.BigEndian.Uint16(b)
	words := (len(b) - 2) / 2
	if int(origin)+words > 1<<16 {
		return 0, fmt.Errorf("%s: image of %d words at origin %04x extends past end of memory", path, words, origin)
	}
	for i := 0; i < words; i++ {
		mem.Write(origin+uint16(i), binary.BigEndian.Uint16(b[2+2*i:]))
	}
	return origin, nil
}
