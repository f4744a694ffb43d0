package uat

import (
	"context"
	"math/rand"
)

// defaultSeed is used when Options.Seed is left at its zero value, so a
// zero-value Options is still fully deterministic rather than silently
// behaving like an unseeded (time-based) generator.
const defaultSeed uint64 = 1

// StopCriterion decides, once per tick, whether the simulation should
// terminate. NoAgents and TimeThreshold are the only two implementations
// (see SPEC_FULL.md §4.6) — the set is closed on purpose, unlike the
// pluggable auctioneer-algorithm registry in the teacher codebase, because
// this engine has exactly one clearing algorithm and two ways to know when
// to stop running it.
type StopCriterion interface {
	shouldStop(t0 uint64, activeCount int) bool
}

// NoAgents terminates the simulation once the active set is empty.
type NoAgents struct{}

func (NoAgents) shouldStop(_ uint64, activeCount int) bool { return activeCount == 0 }

// TimeThreshold terminates the simulation once t0 exceeds T.
type TimeThreshold struct {
	T uint64
}

func (th TimeThreshold) shouldStop(t0 uint64, _ int) bool { return t0 > th.T }

// RegistryView is the read-only view of the agent registry handed to a
// configured StatusCallback.
type RegistryView interface {
	ActiveIDs() []uint64
}

// LedgerReader returns a copy of the private record for (region, t); the
// caller cannot mutate the book through it. Handed to a configured
// StatusCallback.
type LedgerReader[R comparable] func(region R, t uint64) PrivateRecord[R]

// Options configures a call to Simulate.
type Options[R comparable] struct {
	// Factory produces new agents at the start of every tick. Required.
	Factory FactoryFunc[R]

	// TimeWindow bounds how far into the future permits are materialized.
	// Nil means unbounded.
	TimeWindow *uint64

	// StopCriterion decides when the simulation ends. Required.
	StopCriterion StopCriterion

	// TradeCallback, if set, is invoked once per cleared bid.
	TradeCallback func(TradeInfo[R])

	// StatusCallback, if set, is invoked once per tick, before agent
	// generation, with a read-only view of the registry and the ledger.
	StatusCallback func(t0 uint64, registry RegistryView, ledger LedgerReader[R])

	// Seed drives the single RNG stream that produces every seed value
	// handed to the factory and to agent callbacks. Zero uses defaultSeed.
	Seed uint64
}

// Simulate runs the repeated first-price sealed-bid auction described by
// opts until its stop criterion fires or ctx is canceled, whichever comes
// first. ctx is checked once per tick, between the end of one tick and the
// start of the next — no partial tick is ever observed by the caller.
func Simulate[R comparable](ctx context.Context, opts Options[R]) error {
	if opts.StopCriterion == nil {
		opts.StopCriterion = NoAgents{}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(int64(seed)))

	reg := newRegistry[R]()
	book := newLedger[R](opts.TimeWindow)

	var t0 uint64
	for {
		if opts.StatusCallback != nil {
			ledgerReader := LedgerReader[R](func(region R, t uint64) PrivateRecord[R] {
				return book.snapshot(region, t)
			})
			opts.StatusCallback(t0, reg, ledgerReader)
		}

		// Agent generation.
		for _, a := range opts.Factory(t0, rng.Uint64()) {
			reg.insert(a)
		}

		// Bid phase.
		pendingWinners := make([]Permit[R], 0)
		seen := make(map[Permit[R]]bool)
		for _, id := range reg.active {
			bidder, ok := reg.at(id).(Bidder[R])
			if !ok {
				continue
			}

			me := id
			bid := func(region R, t uint64, v float64) bool {
				if t < t0 {
					return false
				}
				rec, inWindow := book.book(region, t)
				if !inWindow || rec.kind != OnSale {
					return false
				}
				if v > rec.minValue && v > rec.highestBid {
					key := Permit[R]{Region: region, Time: t}
					if !seen[key] {
						seen[key] = true
						pendingWinners = append(pendingWinners, key)
					}
					rec.highestBidder = me
					rec.highestBid = v
				}
				return true
			}
			status := makeStatusFunc(book, me)

			bidder.BidPhase(t0, bid, status, rng.Uint64())
		}

		// Clearing.
		if len(pendingWinners) > 0 {
			firstActive := reg.active[0]
			for _, key := range pendingWinners {
				rec, _ := book.book(key.Region, key.Time)
				owner := rec.owner
				highestBidder := rec.highestBidder
				highestBid := rec.highestBid
				minValue := rec.minValue

				if opts.TradeCallback != nil {
					opts.TradeCallback(TradeInfo[R]{
						TransactionTime: t0,
						From:            owner,
						To:              highestBidder,
						Region:          key.Region,
						Time:            key.Time,
						Value:           highestBid,
					})
				}

				if buyer, ok := reg.at(highestBidder).(BuyNotifiee[R]); ok {
					buyer.OnBought(key.Region, key.Time, highestBid)
				}
				if owner != NoOwner && owner >= firstActive {
					if seller, ok := reg.at(owner).(SellNotifiee[R]); ok {
						seller.OnSold(key.Region, key.Time, highestBid)
					}
				}

				rec.kind = InUse
				rec.owner = highestBidder
				rec.highestBidder = NoOwner
				rec.highestBid = 0
				rec.history = append(rec.history, TradeEntry{MinValue: minValue, HighestBid: highestBid})
			}
		}

		// Ask phase.
		type pendingAsk struct {
			region R
			time   uint64
			id     uint64
			value  float64
		}
		pendingAsks := make([]pendingAsk, 0)
		for _, id := range reg.active {
			asker, ok := reg.at(id).(Asker[R])
			if !ok {
				continue
			}

			me := id
			ask := func(region R, t uint64, v float64) bool {
				if t < t0 {
					return false
				}
				rec, inWindow := book.book(region, t)
				if !inWindow {
					return false
				}
				if rec.kind == OnSale && rec.owner != me {
					return false
				}
				if rec.kind == InUse && rec.owner != me {
					return false
				}
				pendingAsks = append(pendingAsks, pendingAsk{region: region, time: t, id: me, value: v})
				return true
			}
			status := makeStatusFunc(book, me)

			asker.AskPhase(t0, ask, status, rng.Uint64())
		}

		for _, pa := range pendingAsks {
			rec, _ := book.book(pa.region, pa.time)
			rec.kind = OnSale
			rec.owner = pa.id
			rec.minValue = pa.value
			rec.highestBidder = NoOwner
			rec.highestBid = 0
			rec.history = nil
		}

		// Stop / cull.
		keepActive := make([]uint64, 0, reg.activeCount())
		for _, id := range reg.active {
			if reg.at(id).Stop(t0, rng.Uint64()) {
				if finisher, ok := reg.at(id).(FinishNotifiee); ok {
					finisher.OnFinished(id, t0)
				}
				continue
			}
			keepActive = append(keepActive, id)
		}
		reg.updateActive(keepActive)

		// Advance.
		book.advance()
		t0++

		if opts.StopCriterion.shouldStop(t0, reg.activeCount()) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func makeStatusFunc[R comparable](book *ledger[R], me uint64) StatusFunc[R] {
	return func(region R, t uint64) PublicStatus {
		rec, inWindow := book.book(region, t)
		if !inWindow || rec.kind == OutOfLimits {
			return PublicStatus{Kind: Unavailable}
		}
		switch rec.kind {
		case InUse:
			if rec.owner == me {
				return PublicStatus{Kind: Owned}
			}
			return PublicStatus{Kind: Unavailable}
		case OnSale:
			if rec.owner == me {
				return PublicStatus{Kind: Unavailable}
			}
			history := make([]TradeEntry, len(rec.history))
			copy(history, rec.history)
			return PublicStatus{Kind: Available, MinValue: rec.minValue, History: history}
		default:
			return PublicStatus{Kind: Unavailable}
		}
	}
}
