package text

import "testing"

func TestContainsFold(t *testing.T) {
	testcases := []struct {
		s, substr string
		want      bool
	}{
		{"Arial", "arial", true},
		{"Arial", "ARI", true},
		{"Arial Black", "l b", true},
		{"Arial", "", true},
		{"", "", true},
		{"", "x", false},
		{"Courier New", "courier old", false},
		{"Öffentlich Grotesk", "öffent", true},
		{"ÖFFENTLICH", "öffent", true},
		{"Neue Straße", "straße", true},
	}

	for _, tc := range testcases {
		if got := ContainsFold(tc.s, tc.substr); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.s, tc.substr, got, tc.want)
		}
	}
}

func TestFoldIsStable(t *testing.T) {
	in := "Helvetica Neue LT Pro"
	if Fold(in) != Fold(Fold(in)) {
		t.Fatalf("folding %q twice changed the result", in)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("Öffentlich")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Offentlich" {
		t.Errorf("Normalize = %q, want %q", got, "Offentlich")
	}
}
