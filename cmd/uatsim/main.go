// Command uatsim runs a repeated first-price sealed-bid permit auction over a
// small grid airspace and prints a trade log as it goes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"

	"github.com/cheggaaa/pb"

	"github.com/drone-comp/uatlib"
	"github.com/drone-comp/uatlib/demoagents"
	"github.com/drone-comp/uatlib/gridregion"
)

var (
	width         = flag.Int("width", 5, "grid width")
	height        = flag.Int("height", 5, "grid height")
	missionAgents = flag.Int("missions", 8, "number of mission agents spawned at tick 0")
	missionGoals  = flag.Int("goals", 3, "number of goal cells per mission agent")
	sellers       = flag.Int("sellers", 2, "number of greedy sellers spawned at tick 0")
	sellerLife    = flag.Uint64("sellerLife", 20, "number of ticks a greedy seller stays active")
	markup        = flag.Float64("markup", 1.5, "resale markup applied by greedy sellers")
	ticks         = flag.Uint64("ticks", 50, "last tick to run (ticks 0 through this value are simulated)")
	timeWindow    = flag.Uint64("timeWindow", 10, "sliding time window, in ticks")
	seed          = flag.Uint64("seed", 1, "RNG seed")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("starting uatsim",
		"width", *width, "height", *height,
		"missions", *missionAgents, "sellers", *sellers,
		"ticks", *ticks, "timeWindow", *timeWindow, "seed", *seed,
	)

	grid := gridregion.Grid{Width: *width, Height: *height}
	window := *timeWindow

	bar := pb.StartNew(int(*ticks) + 1)

	factory := func(t0 uint64, runSeed uint64) []uat.Agent[gridregion.Cell] {
		if t0 != 0 {
			return nil
		}

		rng := rand.New(rand.NewSource(int64(runSeed)))
		agents := make([]uat.Agent[gridregion.Cell], 0, *missionAgents+*sellers)

		for i := 0; i < *missionAgents; i++ {
			agents = append(agents, demoagents.NewMissionAgent(rng.Uint64(), grid, *missionGoals))
		}

		cells := grid.Cells()
		for i := 0; i < *sellers; i++ {
			agents = append(agents, demoagents.NewGreedySeller(t0, *sellerLife, *markup, cells))
		}

		return agents
	}

	err := uat.Simulate(context.Background(), uat.Options[gridregion.Cell]{
		Factory:       factory,
		TimeWindow:    &window,
		StopCriterion: uat.TimeThreshold{T: *ticks},
		Seed:          *seed,
		TradeCallback: func(trade uat.TradeInfo[gridregion.Cell]) {
			if trade.From == uat.NoOwner {
				slog.Info("trade", "t", trade.TransactionTime, "region", trade.Region.String(), "slot", trade.Time, "to", trade.To, "value", trade.Value)
			} else {
				slog.Info("trade", "t", trade.TransactionTime, "region", trade.Region.String(), "slot", trade.Time, "from", trade.From, "to", trade.To, "value", trade.Value)
			}
		},
		StatusCallback: func(t0 uint64, reg uat.RegistryView, reader uat.LedgerReader[gridregion.Cell]) {
			bar.Increment()
			slog.Debug("tick", "t0", t0, "active", len(reg.ActiveIDs()))
		},
	})

	bar.Finish()

	if err != nil {
		slog.Error("simulation ended with error", "error", err)
		os.Exit(1)
	}

	slog.Info("simulation complete")
}
