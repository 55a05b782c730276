package main

import (
	"strconv"
	"strings"
)

// parseMovieIDs splits arguments into positive movie identifiers and the
// arguments that failed to parse.
func parseMovieIDs(args []string) (ids []int64, skipped []string) {
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || id <= 0 {
			skipped = append(skipped, arg)
			continue
		}
		ids = append(ids, id)
	}
	return ids, skipped
}
