package styles

import "testing"

func TestNew(t *testing.T) {
	s := New(Blue)
	if s == nil {
		t.Fatal("expected styles to be created")
	}
}

func TestAccentColor(t *testing.T) {
	tests := []struct {
		name   string
		expect string
	}{
		{"blue", string(Blue)},
		{"mauve", string(Mauve)},
		{"teal", string(Teal)},
		{"unknown falls back to blue", string(Blue)},
		{"", string(Blue)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := tt.name
			if name == "unknown falls back to blue" {
				name = "chartreuse"
			}
			if got := AccentColor(name); string(got) != tt.expect {
				t.Errorf("AccentColor(%q) = %s, expected %s", name, got, tt.expect)
			}
		})
	}
}
