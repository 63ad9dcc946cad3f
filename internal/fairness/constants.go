package fairness

// Seed layout
const (
	DefaultSeedPrefix = "crypto-slot"
	SeedSeparator     = "-"
	DailyTokenLayout  = "2006-01-02"
)

// Hash chain layout
const (
	// CounterSeparator joins the seed digest and the draw counter in every hash input
	CounterSeparator = ":"

	// DrawPrefixHexChars is the width of the hash prefix read as an unsigned integer (32 bits)
	DrawPrefixHexChars = 8

	// drawSpace is 2^32, the number of distinct prefixes. Verifiers must divide by
	// this value rather than 0xFFFFFFFF to reproduce Next().
	drawSpace = 1 << 32
)
