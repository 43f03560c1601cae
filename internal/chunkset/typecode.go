package chunkset

// ValidTypeCode reports whether every byte of code is an ISO-646 letter,
// per spec.md §4.3 step 3: each byte must be in [65,90] ∪ [97,122].
func ValidTypeCode(code [4]byte) bool {
	for _, b := range code {
		letter := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if !letter {
			return false
		}
	}
	return true
}
