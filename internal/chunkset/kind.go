package chunkset

// Kind enumerates every chunk type this validator recognizes by name.
// KindUnknown covers both unrecognized critical and unrecognized ancillary
// chunks; callers distinguish the two via Chunk.Critical.
type Kind int

const (
	KindUnknown Kind = iota
	KindIHDR
	KindPLTE
	KindIDAT
	KindIEND
	KindcHRM
	KindgAMA
	KindiCCP
	KindsBIT
	KindsRGB
	KindbKGD
	KindhIST
	KindtRNS
	KindpHYs
	KindsPLT
	KindtIME
	KindiTXt
	KindtEXt
	KindzTXt
)

var kindNames = map[Kind]string{
	KindIHDR: "IHDR", KindPLTE: "PLTE", KindIDAT: "IDAT", KindIEND: "IEND",
	KindcHRM: "cHRM", KindgAMA: "gAMA", KindiCCP: "iCCP", KindsBIT: "sBIT",
	KindsRGB: "sRGB", KindbKGD: "bKGD", KindhIST: "hIST", KindtRNS: "tRNS",
	KindpHYs: "pHYs", KindsPLT: "sPLT", KindtIME: "tIME", KindiTXt: "iTXt",
	KindtEXt: "tEXt", KindzTXt: "zTXt",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

var codeToKind = func() map[[4]byte]Kind {
	m := make(map[[4]byte]Kind, len(kindNames))
	for k, name := range kindNames {
		m[[4]byte{name[0], name[1], name[2], name[3]}] = k
	}
	return m
}()

// KindFromCode maps a chunk's four-byte type code to its recognized Kind,
// or KindUnknown if the type code names no chunk this validator knows.
func KindFromCode(code [4]byte) Kind {
	if k, ok := codeToKind[code]; ok {
		return k
	}
	return KindUnknown
}
