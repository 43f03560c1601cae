package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

func validateTIME(c Chunk) (string, error) {
	if len(c.Body) != 7 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME",
			fmt.Sprintf("body must be exactly 7 bytes, got %d", len(c.Body)))
	}
	year := decodeUint16BE(c.Body[0:2])
	month := c.Body[2]
	day := c.Body[3]
	hour := c.Body[4]
	minute := c.Body[5]
	second := c.Body[6]

	if month < 1 || month > 12 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME", fmt.Sprintf("month out of range [1,12]: %d", month))
	}
	if day < 1 || day > 31 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME", fmt.Sprintf("day out of range [1,31]: %d", day))
	}
	if hour > 23 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME", fmt.Sprintf("hour out of range [0,23]: %d", hour))
	}
	if minute > 59 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME", fmt.Sprintf("minute out of range [0,59]: %d", minute))
	}
	if second > 60 { // 60 allowed for a leap second
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tIME", fmt.Sprintf("second out of range [0,60]: %d", second))
	}

	line := fmt.Sprintf("tIME  %04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second)
	return line, nil
}
