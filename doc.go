// Package uat implements a repeated first-price sealed-bid auction engine
// for time-indexed spatial permits.
//
// A permit is the right to occupy a region (an opaque, comparable value
// supplied by the host) at a given future tick. Agents, produced over time
// by a factory function, bid for unowned or resold permits during a bid
// phase and may offer permits they hold for resale during an ask phase.
// The market clears once per tick and the simulation advances until a
// configured stop criterion fires.
//
// The package has no notion of physical distance, motion, or path
// planning: regions are opaque keys. See Permit and Simulate.
package uat
