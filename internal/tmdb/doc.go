// Package tmdb provides the minimal TMDB API client used by the analysis and
// recommendation commands.
//
// It authenticates requests and exposes movie detail and credit lookups plus
// the discover and recommendations listings that feed the candidate pool.
// Responses are strongly typed so downstream scoring never touches raw JSON;
// fields TMDB omits decode to zero values. Options allow tests to supply
// custom HTTP clients without modifying production code.
package tmdb
