// Package analysis folds fetched movie snapshots into the participation,
// genre-frequency, and top-grossing tallies produced by the analyze command.
//
// Aggregation is pure and order independent; fetching (with skip-and-warn
// handling of unresolvable identifiers) lives in the Collector so the tally
// logic stays trivially testable.
package analysis
