// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package critic

// Quality is the verdict category a critic assigns to a wine.
type Quality string

// Quality categories, best first.
const (
	Extraordinary  Quality = "extraordinary"
	Outstanding    Quality = "outstanding"
	Good           Quality = "good"
	Average        Quality = "average"
	NotRecommended Quality = "not-recommended"
	Unacceptable   Quality = "unacceptable"
)

// Qualities lists every category in display order.
var Qualities = []Quality{
	Extraordinary,
	Outstanding,
	Good,
	Average,
	NotRecommended,
	Unacceptable,
}

var qualityNames = map[Quality]string{
	Extraordinary:  "Extraordinary",
	Outstanding:    "Outstanding",
	Good:           "Good",
	Average:        "Average",
	NotRecommended: "Not Recommended",
	Unacceptable:   "Unacceptable",
}

// ParseQuality returns the category for id and whether it is known.
func ParseQuality(id string) (Quality, bool) {
	q := Quality(id)
	_, ok := qualityNames[q]
	return q, ok
}

// Name returns the display name. Unknown ids display as themselves.
func (q Quality) Name() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return string(q)
}

func (q Quality) String() string { return string(q) }
