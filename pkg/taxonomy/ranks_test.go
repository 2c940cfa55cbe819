package taxonomy

import "testing"

func TestRankOrder(t *testing.T) {
	if len(Ranks) != 7 {
		t.Fatalf("Expected 7 ranks, got %d", len(Ranks))
	}
	expected := []Rank{Kingdom, Phylum, Class, Order, Family, Genus, Species}
	for i, r := range expected {
		if Ranks[i] != r {
			t.Errorf("Ranks[%d] = %s, want %s", i, Ranks[i], r)
		}
		if IndexOf(r) != i {
			t.Errorf("IndexOf(%s) = %d, want %d", r, IndexOf(r), i)
		}
	}
}

func TestIndexOfUnknown(t *testing.T) {
	if IndexOf("Tribe") != -1 {
		t.Error("Expected -1 for unknown rank")
	}
	if IsRank("Tribe") {
		t.Error("Tribe is not a rank")
	}
	if !IsRank("Genus") {
		t.Error("Genus is a rank")
	}
}

func TestMoreSpecificThan(t *testing.T) {
	tests := []struct {
		r1, r2 Rank
		want   bool
	}{
		{Species, Genus, true},
		{Genus, Species, false},
		{Phylum, Kingdom, true},
		{Kingdom, Kingdom, false},
		{Species, Kingdom, true},
	}
	for _, tt := range tests {
		if got := MoreSpecificThan(tt.r1, tt.r2); got != tt.want {
			t.Errorf("MoreSpecificThan(%s, %s) = %v, want %v", tt.r1, tt.r2, got, tt.want)
		}
	}
}

func TestBefore(t *testing.T) {
	if r, ok := Before(Species); !ok || r != Genus {
		t.Errorf("Before(Species) = %s, %v; want Genus, true", r, ok)
	}
	if r, ok := Before(Phylum); !ok || r != Kingdom {
		t.Errorf("Before(Phylum) = %s, %v; want Kingdom, true", r, ok)
	}
	if _, ok := Before(Kingdom); ok {
		t.Error("Kingdom has no more general rank")
	}
}
