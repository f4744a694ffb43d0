// Package demoagents provides a couple of reference uat.Agent implementations
// over gridregion.Cell, meant to exercise cmd/uatsim and to show what a real
// agent implementation looks like beyond the test suite's scripted stand-ins.
package demoagents

import (
	"math/rand"

	"github.com/drone-comp/uatlib"
	"github.com/drone-comp/uatlib/gridregion"
)

// MissionAgent picks a handful of goal cells at construction and bids for a
// simultaneous landing slot at all of them, as far out as it needs to go to
// find a single future tick where every goal is free. It never resells: once
// it holds every goal it just sits on them until it is culled.
type MissionAgent struct {
	goals []gridregion.Cell
	owned map[uat.Permit[gridregion.Cell]]bool
	cost  float64
}

// NewMissionAgent builds an agent with numGoals distinct goal cells sampled
// from grid, deterministically from seed.
func NewMissionAgent(seed uint64, grid gridregion.Grid, numGoals int) *MissionAgent {
	rng := rand.New(rand.NewSource(int64(seed)))
	seen := map[gridregion.Cell]bool{}
	goals := make([]gridregion.Cell, 0, numGoals)
	for len(goals) < numGoals {
		c := gridregion.Cell{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if seen[c] {
			continue
		}
		seen[c] = true
		goals = append(goals, c)
	}
	return &MissionAgent{
		goals: goals,
		owned: map[uat.Permit[gridregion.Cell]]bool{},
	}
}

func (a *MissionAgent) Stop(t0 uint64, seed uint64) bool {
	return len(a.owned) == len(a.goals)
}

func (a *MissionAgent) BidPhase(t0 uint64, bid uat.BidFunc[gridregion.Cell], status uat.StatusFunc[gridregion.Cell], seed uint64) {
	rng := rand.New(rand.NewSource(int64(seed)))

	target := t0 + 1
	for {
		allAvailable := true
		for _, goal := range a.goals {
			if status(goal, target).Kind != uat.Available {
				allAvailable = false
				break
			}
		}
		if allAvailable {
			break
		}
		target += uint64(1 + rng.Intn(5))
	}

	for _, goal := range a.goals {
		bid(goal, target, rng.Float64()*10)
	}
}

func (a *MissionAgent) AskPhase(t0 uint64, ask uat.AskFunc[gridregion.Cell], status uat.StatusFunc[gridregion.Cell], seed uint64) {
	// Do not sell permits once every goal has been achieved.
	if len(a.owned) == len(a.goals) {
		return
	}
}

func (a *MissionAgent) OnBought(region gridregion.Cell, t uint64, value float64) {
	a.owned[uat.Permit[gridregion.Cell]{Region: region, Time: t}] = true
	a.cost += value
}

func (a *MissionAgent) OnSold(region gridregion.Cell, t uint64, value float64) {
	a.cost -= value
}

// GreedySeller buys up permits in its target cells and immediately relists
// them for resale at a markup over what it paid. Its bid price is scored the
// way representative.score weighs an instance placement: as a function of
// what it already holds, not a fixed constant.
type GreedySeller struct {
	targets []gridregion.Cell
	markup  float64
	bornAt  uint64
	life    uint64

	owned map[uat.Permit[gridregion.Cell]]float64
}

// NewGreedySeller builds a seller that will bid on targets for life ticks
// starting at bornAt, relisting anything it wins at markup times its cost.
func NewGreedySeller(bornAt uint64, life uint64, markup float64, targets []gridregion.Cell) *GreedySeller {
	return &GreedySeller{
		targets: targets,
		markup:  markup,
		bornAt:  bornAt,
		life:    life,
		owned:   map[uat.Permit[gridregion.Cell]]float64{},
	}
}

func (s *GreedySeller) Stop(t0 uint64, seed uint64) bool {
	return t0+1 >= s.bornAt+s.life
}

func (s *GreedySeller) BidPhase(t0 uint64, bid uat.BidFunc[gridregion.Cell], status uat.StatusFunc[gridregion.Cell], seed uint64) {
	for _, cell := range s.targets {
		st := status(cell, t0+1)
		if st.Kind != uat.Available {
			continue
		}
		bid(cell, t0+1, s.bidPrice(st))
	}
}

func (s *GreedySeller) AskPhase(t0 uint64, ask uat.AskFunc[gridregion.Cell], status uat.StatusFunc[gridregion.Cell], seed uint64) {
	for permit, cost := range s.owned {
		if ask(permit.Region, permit.Time, s.askPrice(cost)) {
			delete(s.owned, permit)
		}
	}
}

func (s *GreedySeller) OnBought(region gridregion.Cell, t uint64, value float64) {
	s.owned[uat.Permit[gridregion.Cell]{Region: region, Time: t}] = value
}

func (s *GreedySeller) OnSold(region gridregion.Cell, t uint64, value float64) {
	delete(s.owned, uat.Permit[gridregion.Cell]{Region: region, Time: t})
}

// bidPrice never exceeds the asking floor by more than a fixed margin: a
// seller that already holds inventory bids conservatively for more.
func (s *GreedySeller) bidPrice(st uat.PublicStatus) float64 {
	margin := 1.0 / float64(1+len(s.owned))
	return st.MinValue + margin
}

func (s *GreedySeller) askPrice(cost float64) float64 {
	return cost * s.markup
}
