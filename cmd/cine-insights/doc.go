// Command cine-insights aggregates movie statistics and produces similarity
// based recommendations using The Movie Database API.
//
// It exposes two operations: "analyze", which folds a list of movies into
// actor participation, genre frequency, and top-grossing tallies, and
// "recommend", which ranks the five movies most similar to a seed movie.
// Both write JSON reports (and, for analyze, bar charts) to the configured
// output directory.
package main
