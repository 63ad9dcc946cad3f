package domain

import "github.com/shopspring/decimal"

// rtpReportPlaces is the precision of the exact RTP string in reports
const rtpReportPlaces = 6

// AggregateStats are the long-lived counters the RTP controller steers by
type AggregateStats struct {
	TotalWagered int64 `json:"total_wagered"`
	TotalPaid    int64 `json:"total_paid"`
	SpinCount    int64 `json:"spin_count"`
}

// StatsDelta is the change applied by one finalized spin
type StatsDelta struct {
	Wagered int64
	Paid    int64
	Spins   int64
}

// RTP returns totalPaid / max(1, totalWagered)
func (s AggregateStats) RTP() float64 {
	wagered := s.TotalWagered
	if wagered < 1 {
		wagered = 1
	}
	return float64(s.TotalPaid) / float64(wagered)
}

// RTPDecimal returns the same ratio as RTP without float rounding, for audit reports
func (s AggregateStats) RTPDecimal() string {
	wagered := s.TotalWagered
	if wagered < 1 {
		wagered = 1
	}
	return decimal.NewFromInt(s.TotalPaid).
		DivRound(decimal.NewFromInt(wagered), rtpReportPlaces).
		StringFixed(rtpReportPlaces)
}

// Apply returns the stats after adding the delta
func (s AggregateStats) Apply(d StatsDelta) AggregateStats {
	return AggregateStats{
		TotalWagered: s.TotalWagered + d.Wagered,
		TotalPaid:    s.TotalPaid + d.Paid,
		SpinCount:    s.SpinCount + d.Spins,
	}
}

// IsZero reports whether the delta changes nothing
func (d StatsDelta) IsZero() bool {
	return d.Wagered == 0 && d.Paid == 0 && d.Spins == 0
}
