package main

import (
	"strconv"
	"strings"

	"github.com/jacentio/beyond/board"
)

// parseKey turns "e,4" into a key. Components that parse as integers become
// indices, everything else becomes a label.
func parseKey(raw string) board.Key {
	parts := strings.Split(raw, ",")
	key := make(board.Key, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if n, err := strconv.Atoi(p); err == nil {
			key[i] = board.ByIndex(n)
			continue
		}
		key[i] = board.ByLabel(p)
	}
	return key
}
