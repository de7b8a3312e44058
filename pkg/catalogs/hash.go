package catalogs

import "github.com/agentstation/bookshelf/pkg/constants"

// Hash is the djb2 string hash (seed 5381, h = h*33 + c).
//
// The accumulator is 32 bits wide and bytes are added as signed chars, so
// slot order, and therefore save order, stays compatible with existing
// books.txt files.
func Hash(s string) uint32 {
	h := uint32(constants.HashSeed)
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint32(int32(int8(s[i])))
	}
	return h
}

// slot returns the table index for a genre name.
func (c *Catalog) slot(name string) int {
	return int(Hash(name) % uint32(len(c.slots)))
}
