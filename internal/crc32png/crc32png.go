// Package crc32png computes the PNG-specified CRC-32, the check value
// covering a chunk's type code and data field.
//
// The algorithm is the reflected CRC-32 used throughout PNG: polynomial
// 0xEDB88320, initial register 0xFFFFFFFF, final XOR 0xFFFFFFFF. See
// https://www.w3.org/TR/png/#5CRC-algorithm.
package crc32png

const polynomial uint32 = 0xEDB88320

// Table is the byte-indexed lookup table for one step of the CRC update.
var Table [256]uint32

func init() {
	for n := range Table {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 == 1 {
				c = polynomial ^ (c >> 1)
			} else {
				c = c >> 1
			}
		}
		Table[n] = c
	}
}

// Update runs one step of the table-driven CRC over p, given the current
// (non-finalized) register value crc.
func Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = Table[(crc^uint32(b))&0xff] ^ (crc >> 8)
	}
	return crc
}

// ChunkCRC computes the CRC-32 of a chunk's type code followed by its body,
// exactly as stored in the chunk's trailing CRC field.
func ChunkCRC(typeCode [4]byte, body []byte) uint32 {
	crc := Update(0xFFFFFFFF, typeCode[:])
	crc = Update(crc, body)
	return crc ^ 0xFFFFFFFF
}
