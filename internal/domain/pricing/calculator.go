package pricing

import (
	"math"
	"time"
)

// All amounts are integer minor currency units. The same calculation runs on
// the client for display; this server-side result is the authoritative one and
// the only input ever sent to the payment processor.

const (
	// TaxRateBasisPoints is 12% expressed in basis points so the tax can be
	// computed in integer arithmetic with round-half-up semantics.
	TaxRateBasisPoints int64 = 1200

	ServiceFee    int64 = 2500
	ProtectionFee int64 = 1500
)

type Breakdown struct {
	Base       int64 `json:"base"`
	Addons     int64 `json:"addonsTotal"`
	Tax        int64 `json:"tax"`
	Service    int64 `json:"serviceFee"`
	Protection int64 `json:"protectionFee"`
	Total      int64 `json:"total"`
}

// Calculate produces the itemized breakdown for a booking. Order of
// operations is fixed: addons, subtotal, tax, flat fees, total. Addon ids
// missing from the catalog contribute nothing; the catalog on the client may
// lag behind the server's.
func Calculate(basePrice int64, addonIDs []string, catalog map[string]int64, protection bool) Breakdown {
	var addonsCost int64
	for _, id := range addonIDs {
		addonsCost += catalog[id]
	}

	subtotal := basePrice + addonsCost
	tax := roundHalfUpBasisPoints(subtotal, TaxRateBasisPoints)

	var protectionCost int64
	if protection {
		protectionCost = ProtectionFee
	}

	return Breakdown{
		Base:       basePrice,
		Addons:     addonsCost,
		Tax:        tax,
		Service:    ServiceFee,
		Protection: protectionCost,
		Total:      subtotal + tax + ServiceFee + protectionCost,
	}
}

// Nights counts billable nights for a stay, rounding partial days up.
// A same-day or inverted range still bills one night.
func Nights(start, end time.Time) int64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return int64(days)
}

func roundHalfUpBasisPoints(amount, bp int64) int64 {
	return (amount*bp + 5000) / 10000
}
