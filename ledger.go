package uat

// privateRecord is the mutable book entry backing a permit. PrivateRecord
// (in status.go) is the read-only copy exposed to callers.
type privateRecord[R comparable] struct {
	kind RecordKind

	owner         uint64
	minValue      float64
	highestBidder uint64
	highestBid    float64

	history []TradeEntry
}

func defaultRecord[R comparable]() *privateRecord[R] {
	return &privateRecord[R]{
		kind:          OnSale,
		owner:         NoOwner,
		minValue:      0,
		highestBidder: NoOwner,
		highestBid:    0,
	}
}

func (r *privateRecord[R]) copy() PrivateRecord[R] {
	history := make([]TradeEntry, len(r.history))
	copy(history, r.history)
	return PrivateRecord[R]{
		Kind:          r.kind,
		Owner:         r.owner,
		MinValue:      r.minValue,
		HighestBidder: r.highestBidder,
		HighestBid:    r.highestBid,
		History:       history,
	}
}

// ledger is the sliding-window permit book (C2). Bucket i holds the
// permits due at tick t0+i; bucket 0 is the current tick.
// Buckets grow on demand and the front bucket is discarded once a tick
// finishes.
type ledger[R comparable] struct {
	t0         uint64
	timeWindow *uint64
	buckets    []map[Permit[R]]*privateRecord[R]
}

func newLedger[R comparable](timeWindow *uint64) *ledger[R] {
	return &ledger[R]{timeWindow: timeWindow}
}

// book returns the writable record for (region, t), creating it lazily
// with the default OnSale state on first access, or reports inWindow=false
// if t lies outside [t0, t0+1+timeWindow]. The returned record must never
// be retained past the tick in which it was fetched.
func (l *ledger[R]) book(region R, t uint64) (rec *privateRecord[R], inWindow bool) {
	if t < l.t0 {
		return &privateRecord[R]{kind: OutOfLimits}, false
	}
	if l.timeWindow != nil && t > l.t0+1+*l.timeWindow {
		return &privateRecord[R]{kind: OutOfLimits}, false
	}

	index := t - l.t0
	for uint64(len(l.buckets)) <= index {
		l.buckets = append(l.buckets, map[Permit[R]]*privateRecord[R]{})
	}

	bucket := l.buckets[index]
	key := Permit[R]{Region: region, Time: t}
	rec, ok := bucket[key]
	if !ok {
		rec = defaultRecord[R]()
		bucket[key] = rec
	}
	return rec, true
}

// snapshot returns a read-only copy of the record for (region, t) without
// creating it lazily beyond what book already does; used by the status
// callback's ledger reader, which must not let the caller mutate state.
func (l *ledger[R]) snapshot(region R, t uint64) PrivateRecord[R] {
	rec, _ := l.book(region, t)
	return rec.copy()
}

// advance discards the front bucket (the tick that just finished) and
// increments t0.
func (l *ledger[R]) advance() {
	if len(l.buckets) > 0 {
		l.buckets = l.buckets[1:]
	}
	l.t0++
}
