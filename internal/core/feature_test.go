package core

import "testing"

func TestFeatureList(t *testing.T) {
	items := FeatureList()

	wantTitles := []string{"Easy to Setup", "Measure what matters", "Design 1:1 personalized funnels"}
	if len(items) != len(wantTitles) {
		t.Fatalf("FeatureList() returned %d items, want %d", len(items), len(wantTitles))
	}
	for i, want := range wantTitles {
		if items[i].Title != want {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, want)
		}
		if items[i].VideoSrc == "" || items[i].Description == "" {
			t.Errorf("items[%d] is incomplete: %+v", i, items[i])
		}
	}
}

func TestFeatureListReturnsCopy(t *testing.T) {
	items := FeatureList()
	items[0].Title = "changed"

	if got := FeatureList()[0].Title; got != "Easy to Setup" {
		t.Errorf("FeatureList()[0].Title = %q after mutating a previous result", got)
	}
}
