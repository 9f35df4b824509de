package catalog

import "testing"

func TestGet(t *testing.T) {
	a, err := Get("gallic-acid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Mass != 170.12 {
		t.Errorf("expected mass 170.12, got %f", a.Mass)
	}
	if a.Charge != -1 {
		t.Errorf("expected charge -1, got %f", a.Charge)
	}

	if _, err := Get("unobtainium"); err == nil {
		t.Error("expected error for unknown molecule")
	}
}

func TestAllSortedAndValid(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 molecules, got %d", len(all))
	}

	prev := ""
	for _, a := range all {
		if a.ID <= prev {
			t.Errorf("IDs not sorted: %s after %s", a.ID, prev)
		}
		prev = a.ID

		if a.Mass <= 0 {
			t.Errorf("%s: mass must be positive", a.ID)
		}
		if a.HydrodynamicRadius <= 0 {
			t.Errorf("%s: radius must be positive", a.ID)
		}
	}
}
