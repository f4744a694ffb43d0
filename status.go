package uat

// TradeEntry is one completed sale of a permit: the reserve it was listed
// at, and the price it actually sold for.
type TradeEntry struct {
	MinValue   float64
	HighestBid float64
}

// PublicStatusKind tags the variant carried by a PublicStatus.
type PublicStatusKind int

const (
	// Unavailable means the permit cannot be bid on: it is out of the
	// sliding window, held by someone else, or listed by the caller
	// itself (an agent cannot bid against its own ask).
	Unavailable PublicStatusKind = iota
	// Available means the permit can be bid on this tick.
	Available
	// Owned means the caller currently holds the permit.
	Owned
)

// PublicStatus is the view of a permit exposed to an agent through the
// status closure handed to BidPhase/AskPhase. It never reveals the current
// highest bidder or bid: an agent only learns those by winning or losing.
type PublicStatus struct {
	Kind PublicStatusKind

	// MinValue and History are populated only when Kind == Available.
	// History is a defensive copy; mutating it has no effect on the ledger.
	MinValue float64
	History  []TradeEntry
}

// RecordKind tags the variant carried by a PrivateRecord.
type RecordKind int

const (
	// OnSale means the permit is tradeable this tick.
	OnSale RecordKind = iota
	// InUse means the permit is held and not biddable this tick.
	InUse
	// OutOfLimits means the permit lies outside the sliding window.
	OutOfLimits
)

// PrivateRecord is the full internal state of a permit, exposed only to a
// configured StatusCallback (never to agents). Owner, MinValue,
// HighestBidder, and HighestBid are meaningful only when Kind == OnSale;
// Owner alone is meaningful when Kind == InUse.
type PrivateRecord[R comparable] struct {
	Kind RecordKind

	Owner         uint64
	MinValue      float64
	HighestBidder uint64
	HighestBid    float64

	History []TradeEntry
}

// TradeInfo describes one completed sale, passed to a configured
// TradeCallback at the moment a bid clears.
type TradeInfo[R comparable] struct {
	TransactionTime uint64
	From            uint64 // NoOwner for a never-before-owned permit
	To              uint64
	Region          R
	Time            uint64
	Value           float64
}
