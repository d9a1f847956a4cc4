// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package critic

import (
	"sort"
	"strings"
)

// keywordCounter counts keywords and remembers first-seen order, so ties
// keep the order in which keywords were first mentioned.
type keywordCounter struct {
	order  []string
	counts map[string]int
}

func newKeywordCounter() *keywordCounter {
	return &keywordCounter{counts: make(map[string]int)}
}

// Add counts each keyword once per occurrence. Underscores become spaces.
func (c *keywordCounter) Add(keywords []string) {
	for _, kw := range keywords {
		kw = normalizeKeyword(kw)
		if kw == "" {
			continue
		}
		if _, seen := c.counts[kw]; !seen {
			c.order = append(c.order, kw)
		}
		c.counts[kw]++
	}
}

// Top returns at most n keywords by descending count.
func (c *keywordCounter) Top(n int) []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.SliceStable(out, func(i, j int) bool { return c.counts[out[i]] > c.counts[out[j]] })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func normalizeKeyword(kw string) string {
	return strings.TrimSpace(strings.ReplaceAll(kw, "_", " "))
}

// firstN copies at most n items.
func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
