package radar

import (
	"testing"
	"time"
)

var rankNow = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func hoursAgo(h float64) *time.Time {
	t := rankNow.Add(-time.Duration(h * float64(time.Hour)))
	return &t
}

func TestDiscussionRankFreshnessDecays(t *testing.T) {
	fresh := DiscussionItem{Score: 10, Date: hoursAgo(1)}
	stale := DiscussionItem{Score: 10, Date: hoursAgo(60)}

	if DiscussionRank(fresh, rankNow) <= DiscussionRank(stale, rankNow) {
		t.Fatal("a fresh item with equal popularity must outrank a stale one")
	}

	// Past the decay window the bonus is zero, so only popularity counts.
	older := DiscussionItem{Score: 10, Date: hoursAgo(200)}
	if DiscussionRank(stale, rankNow) != DiscussionRank(older, rankNow) {
		t.Fatal("freshness bonus must be zero for anything older than the window")
	}
}

func TestDiscussionRankCommentsWeighDouble(t *testing.T) {
	scored := DiscussionItem{Score: 20, Date: hoursAgo(1)}
	commented := DiscussionItem{Comments: 10, Date: hoursAgo(1)}

	if DiscussionRank(scored, rankNow) != DiscussionRank(commented, rankNow) {
		t.Fatal("10 comments must weigh the same as 20 points")
	}
}

func TestDiscussionRankUndatedUsesDefaultAge(t *testing.T) {
	undated := DiscussionItem{Score: 50}
	ancient := DiscussionItem{Score: 50, Date: hoursAgo(120)}

	if DiscussionRank(undated, rankNow) != DiscussionRank(ancient, rankNow) {
		t.Fatal("undated items must rank like 120-hour-old ones")
	}
}

func TestRankDiscussionsOrdersAndFillsRankScore(t *testing.T) {
	items := []DiscussionItem{
		{Title: "quiet old", Score: 1, Date: hoursAgo(100)},
		{Title: "hot fresh", Score: 300, Comments: 50, Date: hoursAgo(2)},
		{Title: "popular old", Score: 500, Date: hoursAgo(90)},
	}

	ranked := RankDiscussions(items, rankNow)

	if ranked[0].Title != "hot fresh" {
		t.Fatalf("top item = %q, want %q", ranked[0].Title, "hot fresh")
	}
	if ranked[len(ranked)-1].Title != "quiet old" {
		t.Fatalf("bottom item = %q, want %q", ranked[len(ranked)-1].Title, "quiet old")
	}
	for _, it := range ranked {
		if it.RankScore == 0 {
			t.Fatalf("item %q has no rank score", it.Title)
		}
	}

	// The input slice itself must stay untouched.
	if items[0].RankScore != 0 {
		t.Fatal("RankDiscussions mutated its input")
	}
}

func TestProfilePriorityTiers(t *testing.T) {
	cases := []struct {
		platform string
		want     int
	}{
		{"LinkedIn", 4},
		{"Instagram", 4},
		{"X/Twitter", 3},
		{"GitHub", 2},
		{"Bluesky", 2},
		{"Reddit", 1},
	}

	for _, c := range cases {
		if got := ProfilePriority(c.platform); got != c.want {
			t.Fatalf("ProfilePriority(%q) = %d, want %d", c.platform, got, c.want)
		}
	}
}

func TestSortProfilesPriorityThenDate(t *testing.T) {
	old := rankNow.Add(-48 * time.Hour)
	recent := rankNow.Add(-1 * time.Hour)

	profiles := []Profile{
		{Platform: "GitHub", Name: "gh", Date: &recent},
		{Platform: "LinkedIn", Name: "li-old", Date: &old},
		{Platform: "LinkedIn", Name: "li-new", Date: &recent},
		{Platform: "Reddit", Name: "rd"},
	}

	SortProfiles(profiles)

	want := []string{"li-new", "li-old", "gh", "rd"}
	for i, name := range want {
		if profiles[i].Name != name {
			t.Fatalf("position %d = %q, want %q (full: %v)", i, profiles[i].Name, name, profiles)
		}
	}
}
