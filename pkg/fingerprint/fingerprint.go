package fingerprint

// hashMask keeps the running hash inside 28 bits between rounds.
const (
	hashMask     = 0x0fffffff
	leftmostBits = 0x0fe00000
)

// Hash returns the utm domain hash of s.
// The result depends only on the input string, so it is stable across
// processes and releases. It is a fingerprinting aid, not a security primitive.
// An empty string hashes to 1.
func Hash(s string) uint32 {
	if s == "" {
		return 1
	}

	runes := []rune(s)

	var h uint64
	for i := len(runes) - 1; i >= 0; i-- {
		c := uint64(runes[i])
		h = ((h << 6) & hashMask) + c + (c << 14)
		if left := h & leftmostBits; left != 0 {
			h ^= left >> 21
		}
	}

	return uint32(h)
}

// Device hashes the browser attributes that identify a device:
// user agent, screen resolution and screen colour depth.
func Device(userAgent, screenResolution, screenColourDepth string) uint32 {
	return Hash(userAgent + screenResolution + screenColourDepth)
}
