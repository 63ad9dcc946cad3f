package fairness

import (
	"strconv"
	"strings"
	"time"
)

// SeedMaterial holds every input that determines a spin's seed
type SeedMaterial struct {
	Date         time.Time
	UserID       string
	Balance      int64
	BetAmount    int64
	SpinSequence int64
}

// SeedDeriver builds per-spin seed strings under a fixed prefix
type SeedDeriver struct {
	prefix string
}

// NewSeedDeriver returns a deriver using prefix, or DefaultSeedPrefix when empty
func NewSeedDeriver(prefix string) *SeedDeriver {
	if prefix == "" {
		prefix = DefaultSeedPrefix
	}
	return &SeedDeriver{prefix: prefix}
}

// Prefix returns the rotation prefix in use
func (d *SeedDeriver) Prefix() string {
	return d.prefix
}

// DailyToken rotates once per UTC calendar day
func (d *SeedDeriver) DailyToken(date time.Time) string {
	return d.prefix + SeedSeparator + date.UTC().Format(DailyTokenLayout)
}

// Derive concatenates the material in fixed order:
// {dailyToken}-{balance}-{betAmount}-{userId}-{spinSequence}.
// The numeric fields never contain the separator, so the user ID is recoverable
// as everything between the bet and the final sequence number.
func (d *SeedDeriver) Derive(m SeedMaterial) string {
	var b strings.Builder
	b.Grow(len(d.prefix) + len(m.UserID) + 64)

	b.WriteString(d.DailyToken(m.Date))
	b.WriteString(SeedSeparator)
	b.WriteString(strconv.FormatInt(m.Balance, 10))
	b.WriteString(SeedSeparator)
	b.WriteString(strconv.FormatInt(m.BetAmount, 10))
	b.WriteString(SeedSeparator)
	b.WriteString(m.UserID)
	b.WriteString(SeedSeparator)
	b.WriteString(strconv.FormatInt(m.SpinSequence, 10))

	return b.String()
}
