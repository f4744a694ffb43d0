package uat

// BidFunc lets an agent bid v on the permit (region, t) during its bid
// phase. It returns whether the bid was accepted into the book — true even
// when later outbid within the same tick, false when the permit cannot be
// bid on at all (out of window, already in use, or t < t0). The function is
// only valid for the duration of the BidPhase call that received it.
type BidFunc[R comparable] func(region R, t uint64, v float64) bool

// AskFunc lets an agent list a permit it holds for resale at floor v. It
// returns whether the ask was accepted (the caller owns the permit and it
// is in the sliding window). Only valid for the duration of the AskPhase
// call that received it.
type AskFunc[R comparable] func(region R, t uint64, v float64) bool

// StatusFunc reports the caller's view of a permit. Only valid for the
// duration of the call that received it.
type StatusFunc[R comparable] func(region R, t uint64) PublicStatus

// FactoryFunc produces the agents that join the simulation at tick t0,
// given a fresh seed drawn from the engine's RNG stream. It must be a pure
// function of (t0, seed) for a run to be reproducible.
type FactoryFunc[R comparable] func(t0 uint64, seed uint64) []Agent[R]

// Agent is the only capability every participant must implement. Stop is
// checked once per tick, after clearing and asking are done; returning
// true removes the agent from the active set for good.
type Agent[R comparable] interface {
	Stop(t0 uint64, seed uint64) bool
}

// Bidder is an optional capability: an agent that wants to bid during the
// bid phase implements it.
type Bidder[R comparable] interface {
	BidPhase(t0 uint64, bid BidFunc[R], status StatusFunc[R], seed uint64)
}

// Asker is an optional capability: an agent that wants to list permits for
// resale during the ask phase implements it.
type Asker[R comparable] interface {
	AskPhase(t0 uint64, ask AskFunc[R], status StatusFunc[R], seed uint64)
}

// BuyNotifiee is an optional capability notified synchronously, during
// clearing, when the agent wins a bid.
type BuyNotifiee[R comparable] interface {
	OnBought(region R, t uint64, value float64)
}

// SellNotifiee is an optional capability notified when a permit the agent
// previously held is resold to someone else. It is not called if the
// agent's id has already been prefix-evicted from the registry (see
// registry.go).
type SellNotifiee[R comparable] interface {
	OnSold(region R, t uint64, value float64)
}

// FinishNotifiee is an optional capability notified once, immediately
// before the agent is removed, when its Stop call returns true.
type FinishNotifiee interface {
	OnFinished(id uint64, t0 uint64)
}
