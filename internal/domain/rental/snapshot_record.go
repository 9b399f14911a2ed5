package rental

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SnapshotRecord is the per-type availability record as delivered by the Warenwirtschaft backend.
type SnapshotRecord struct {
	Gesamt     int             `json:"gesamt"`
	Verfuegbar int             `json:"verfuegbar"`
	Preis1Tag  decimal.Decimal `json:"preis_1tag"`
	Preis3Tage decimal.Decimal `json:"preis_3tage"`
	Preis5Tage decimal.Decimal `json:"preis_5tage"`
	Vermietbar *bool           `json:"vermietbar,omitempty"`
}

func (r SnapshotRecord) IsRentable() bool {
	return r.Vermietbar == nil || *r.Vermietbar
}

type SnapshotIssue struct {
	Type   string
	Reason string
}

const (
	IssueBlankName          = "blank type name"
	IssueNegativeTotal      = "negative total units clamped to 0"
	IssueNegativeAvailable  = "negative available units clamped to 0"
	IssueAvailableOverTotal = "available units above total clamped to total"
	IssueNegativeRate       = "negative day rate clamped to 0"
	IssueTierAnomaly        = "day rates increase with duration"
)

// NormalizeSnapshot validates the raw mapping once at the boundary. Records that are
// not rentable are dropped; malformed values are repaired and reported, never rejected.
func NormalizeSnapshot(raw map[string]SnapshotRecord) (Snapshot, []SnapshotIssue) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var issues []SnapshotIssue
	rates := make([]BicycleTypeRate, 0, len(raw))
	for _, key := range keys {
		rec := raw[key]
		name, err := NewTypeName(key)
		if err != nil {
			issues = append(issues, SnapshotIssue{Type: key, Reason: IssueBlankName})
			continue
		}
		if !rec.IsRentable() {
			continue
		}

		report := func(reason string) {
			issues = append(issues, SnapshotIssue{Type: name.String(), Reason: reason})
		}

		total := rec.Gesamt
		if total < 0 {
			report(IssueNegativeTotal)
			total = 0
		}
		available := rec.Verfuegbar
		if available < 0 {
			report(IssueNegativeAvailable)
			available = 0
		}
		if available > total {
			report(IssueAvailableOverTotal)
			available = total
		}

		tiers := [3]decimal.Decimal{rec.Preis1Tag, rec.Preis3Tage, rec.Preis5Tage}
		for i := range tiers {
			if tiers[i].IsNegative() {
				report(IssueNegativeRate)
				tiers[i] = decimal.Zero
			}
		}

		rate := BicycleTypeRate{
			Name:           name,
			Tier1:          tiers[0],
			Tier2:          tiers[1],
			Tier3:          tiers[2],
			TotalUnits:     total,
			AvailableUnits: available,
			Rentable:       true,
		}
		if rate.HasTierAnomaly() {
			report(IssueTierAnomaly)
		}
		rates = append(rates, rate)
	}

	return NewSnapshot(rates...), issues
}

// Records converts the snapshot back to its wire shape.
func (s Snapshot) Records() map[string]SnapshotRecord {
	out := make(map[string]SnapshotRecord, len(s.rates))
	for name, r := range s.rates {
		rentable := true
		out[name.String()] = SnapshotRecord{
			Gesamt:     r.TotalUnits,
			Verfuegbar: r.AvailableUnits,
			Preis1Tag:  r.Tier1,
			Preis3Tage: r.Tier2,
			Preis5Tage: r.Tier3,
			Vermietbar: &rentable,
		}
	}
	return out
}
