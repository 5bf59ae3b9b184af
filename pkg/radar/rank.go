package radar

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Age assumed for discussion items with no usable date, in hours. It sits
// past the point where the freshness bonus has decayed to zero, so undated
// items compete on popularity alone.
const unknownAgeHours = 120

// DiscussionRank blends a log-dampened popularity score with a linear
// freshness bonus that decays to zero by roughly 50 hours. Recent-but-quiet
// and popular-but-old items can both surface.
func DiscussionRank(it DiscussionItem, now time.Time) float64 {
	popularity := float64(it.Score + it.Comments*2)
	popularityScore := math.Log10(popularity+1) * 55

	ageHours := float64(unknownAgeHours)
	if it.Date != nil {
		ageHours = math.Max(0, now.Sub(*it.Date).Hours())
	}
	freshnessScore := math.Max(0, 45-ageHours*0.9)

	return popularityScore + freshnessScore
}

// RankDiscussions computes each item's rank and sorts rank-desc, breaking
// ties by raw score desc, then date desc with missing dates last.
func RankDiscussions(items []DiscussionItem, now time.Time) []DiscussionItem {
	ranked := make([]DiscussionItem, len(items))
	copy(ranked, items)
	for i := range ranked {
		ranked[i].RankScore = DiscussionRank(ranked[i], now)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.RankScore != b.RankScore {
			return a.RankScore > b.RankScore
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return dateUnix(a.Date) > dateUnix(b.Date)
	})
	return ranked
}

// ProfilePriority tiers platforms by how likely they are to carry a
// real-world identity match. Higher is better.
func ProfilePriority(platform string) int {
	label := strings.ToLower(platform)
	switch {
	case strings.Contains(label, "linkedin") || strings.Contains(label, "instagram"):
		return 4
	case strings.Contains(label, "x/") || strings.Contains(label, "twitter"):
		return 3
	case strings.Contains(label, "github") || strings.Contains(label, "bluesky"):
		return 2
	default:
		return 1
	}
}

// SortProfiles orders by platform priority desc, then recency desc with
// missing dates last.
func SortProfiles(profiles []Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		pa, pb := ProfilePriority(a.Platform), ProfilePriority(b.Platform)
		if pa != pb {
			return pa > pb
		}
		return dateUnix(a.Date) > dateUnix(b.Date)
	})
}
