// Package recommend implements the similarity-scored movie recommender.
//
// Given a seed movie it builds a bounded candidate pool from TMDB (discover by
// the seed's genres, merged with TMDB's own recommendations listing), scores
// every candidate with a weighted sum of five normalized sub-scores, and
// returns the top five in a fully deterministic order. All sub-scores and the
// composite score lie in [0, 1].
package recommend
