package search

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/salesflow-dev/salesflow/internal/catalog"
)

func TestEmptyQueryReturnsNothing(t *testing.T) {
	cat := catalog.MustLoad()
	if got := Query(cat, ""); got != nil {
		t.Errorf("empty query: got %d results, want none", len(got))
	}
	if got := Query(cat, "   \t"); got != nil {
		t.Errorf("whitespace query: got %d results, want none", len(got))
	}
}

func TestExactTitleMatches(t *testing.T) {
	cat := catalog.MustLoad()
	for _, node := range cat.Nodes() {
		results := Query(cat, node.Title)
		found := false
		for _, r := range results {
			if r.Node.ID != node.ID {
				continue
			}
			found = true
			if r.MatchType != MatchTitle {
				t.Errorf("node %s: matchType got %s, want %s", node.ID, r.MatchType, MatchTitle)
			}
			if r.MatchText != node.Title {
				t.Errorf("node %s: matchText got %q, want the title", node.ID, r.MatchText)
			}
		}
		if !found {
			t.Errorf("querying for %q did not return node %s", node.Title, node.ID)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	cat := catalog.MustLoad()
	lower := Query(cat, "proposal")
	upper := Query(cat, "PROPOSAL")
	if len(lower) == 0 {
		t.Fatal("expected matches for 'proposal'")
	}
	if len(lower) != len(upper) {
		t.Errorf("case sensitivity: %d vs %d results", len(lower), len(upper))
	}
}

func TestAtMostOneMatchPerNode(t *testing.T) {
	cat := catalog.MustLoad()
	// "the" appears in titles, scripts, qa, and checkpoints across nodes.
	results := Query(cat, "the")

	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Node.ID] {
			t.Errorf("node %s appears more than once", r.Node.ID)
		}
		seen[r.Node.ID] = true
	}
}

func TestTitleWinsOverOtherCategories(t *testing.T) {
	cat := catalog.MustLoad()
	// "Hearing" is in two node titles and also inside other nodes' text.
	for _, r := range Query(cat, "Deep-Dive Hearing") {
		if r.Node.ID == "hearing-2" && r.MatchType != MatchTitle {
			t.Errorf("hearing-2: matchType got %s, want %s", r.MatchType, MatchTitle)
		}
	}
}

func TestScriptMatchHasContextWindow(t *testing.T) {
	cat := catalog.MustLoad()
	// Phrase that occurs mid-script in opening-1 and not in any title.
	results := Query(cat, "challenges and goals")

	var hit *Result
	for i := range results {
		if results[i].Node.ID == "opening-1" {
			hit = &results[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a script match on opening-1")
	}
	if hit.MatchType != MatchScript {
		t.Fatalf("matchType: got %s, want %s", hit.MatchType, MatchScript)
	}
	if !strings.HasPrefix(hit.MatchText, "...") || !strings.HasSuffix(hit.MatchText, "...") {
		t.Errorf("mid-script match should be ellipsized on both sides: %q", hit.MatchText)
	}
	if !strings.Contains(strings.ToLower(hit.MatchText), "challenges and goals") {
		t.Errorf("match text should contain the term: %q", hit.MatchText)
	}
}

func TestScriptMatchAtStartNotLeftEllipsized(t *testing.T) {
	cat := catalog.MustLoad()
	// opening-1's script begins with "Thank you very much".
	results := Query(cat, "Thank you very much for making time")

	var hit *Result
	for i := range results {
		if results[i].Node.ID == "opening-1" {
			hit = &results[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a script match on opening-1")
	}
	if strings.HasPrefix(hit.MatchText, "...") {
		t.Errorf("match at script start should not be left-ellipsized: %q", hit.MatchText)
	}
}

func TestScriptContextKeepsMultibyteRunesIntact(t *testing.T) {
	// Place an em-dash so that a byte-based window boundary would land
	// inside its three-byte encoding: 27 ASCII runes, the dash, 29 more,
	// then the term. The left edge of the ±30 window must sit on a rune
	// boundary, not split the dash.
	main := strings.Repeat("a", 27) + "—" + strings.Repeat("b", 29) + "target plus trailing text to force a right ellipsis"
	data := []byte(fmt.Sprintf(`
nodes:
  - id: a
    phase: opening
    title: A
    script:
      main: %q
`, main))
	cat, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	results := Query(cat, "target")
	if len(results) != 1 || results[0].MatchType != MatchScript {
		t.Fatalf("got %+v, want one script match", results)
	}

	got := results[0].MatchText
	if !utf8.ValidString(got) {
		t.Fatalf("match text is not valid UTF-8: %q", got)
	}
	if !strings.Contains(got, "—") {
		t.Errorf("em-dash at the window edge should survive whole: %q", got)
	}
	if !strings.Contains(got, "target") {
		t.Errorf("match text should contain the term: %q", got)
	}
}

func TestShippedScriptMatchesAreValidUTF8(t *testing.T) {
	cat := catalog.MustLoad()
	// "Tuesday" sits next to an em-dash in closing-1's script body.
	for _, r := range Query(cat, "Tuesday") {
		if !utf8.ValidString(r.MatchText) {
			t.Errorf("node %s: match text is not valid UTF-8: %q", r.Node.ID, r.MatchText)
		}
	}
}

func TestQAMatchReturnsQuestion(t *testing.T) {
	cat := catalog.MustLoad()
	// Text that appears only in a Q&A answer on hearing-1.
	results := Query(cat, "follow-up study three months later")

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Node.ID != "hearing-1" || r.MatchType != MatchQA {
		t.Fatalf("got node %s type %s, want hearing-1 qa", r.Node.ID, r.MatchType)
	}
	if r.MatchText != "How do you measure the effect of the training?" {
		t.Errorf("qa matchText should be the question, got %q", r.MatchText)
	}
}

func TestCheckpointMatch(t *testing.T) {
	cat := catalog.MustLoad()
	// Appears only in a hearing-1 checkpoint.
	results := Query(cat, "at least three concrete challenges")

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Node.ID != "hearing-1" || r.MatchType != MatchCheckpoint {
		t.Fatalf("got node %s type %s, want hearing-1 checkpoint", r.Node.ID, r.MatchType)
	}
}

func TestNoMatches(t *testing.T) {
	cat := catalog.MustLoad()
	if got := Query(cat, "zzzzxqwv"); len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
}

func TestResultsFollowCatalogOrder(t *testing.T) {
	cat := catalog.MustLoad()
	results := Query(cat, "the")

	order := make(map[string]int)
	for i, n := range cat.Nodes() {
		order[n.ID] = i
	}
	for i := 1; i < len(results); i++ {
		if order[results[i-1].Node.ID] > order[results[i].Node.ID] {
			t.Fatal("results must follow catalog iteration order")
		}
	}
}
