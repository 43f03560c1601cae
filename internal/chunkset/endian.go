package chunkset

import "encoding/binary"

// byteOrder is PNG's wire byte order for every multi-byte integer field:
// length, IHDR width/height, cHRM coordinates, gAMA, pHYs axes, tIME year,
// bKGD 16-bit samples. All big-endian (spec.md §4.2).
var byteOrder = binary.BigEndian

func decodeUint32BE(p []byte) uint32 { return byteOrder.Uint32(p) }
func decodeUint16BE(p []byte) uint16 { return byteOrder.Uint16(p) }
