package strategy

import "testing"

func TestIsValid(t *testing.T) {
	for _, s := range All() {
		if !s.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", s)
		}
	}

	invalid := []Strategy{"", "model", "TFIDF", "date"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", s)
		}
	}
}

func TestConstants(t *testing.T) {
	if Model != "pytorch" {
		t.Errorf("Model = %q", Model)
	}
	if Statistical != "tfidf" {
		t.Errorf("Statistical = %q", Statistical)
	}
	if Recency != "date_sort" {
		t.Errorf("Recency = %q", Recency)
	}
}

func TestAll_PriorityOrder(t *testing.T) {
	all := All()
	want := []Strategy{Model, Statistical, Recency}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}
