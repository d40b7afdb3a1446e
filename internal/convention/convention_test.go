package convention

import (
	"errors"
	"testing"
)

func TestIC6000Match(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		match    bool
		groups   map[string]string
	}{
		{
			name:     "Canonical example",
			filename: "20180328_TestAbs_G - 8(fld 4 wv Red - Cy5).tif",
			match:    true,
			groups: map[string]string{
				"n": "20180328_TestAbs",
				"w": "G - 8",
				"s": "4",
			},
		},
		{
			name:     "Compact form",
			filename: "C_13_B - 2(fld 2 wv UV - DAPI).tif",
			match:    true,
			groups: map[string]string{
				"n": "C_13",
				"w": "B - 2",
				"s": "2",
			},
		},
		{
			name:     "PNG extension",
			filename: "exp_one_A - 1(fld 1 wv Blue - FITC).png",
			match:    true,
		},
		{
			name:     "Uppercase extension and keywords",
			filename: "exp_one_A - 1(FLD 1 WV Blue - FITC).TIF",
			match:    true,
		},
		{
			name:     "No convention markers",
			filename: "photo.jpg",
			match:    false,
		},
		{
			name:     "Already canonical",
			filename: "E1_B03_T0001F004L01A01Z01C02.tif",
			match:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, ok := IC6000.Match(tt.filename)
			if ok != tt.match {
				t.Fatalf("Match(%q) = %v, want %v", tt.filename, ok, tt.match)
			}
			for key, want := range tt.groups {
				if groups[key] != want {
					t.Errorf("group %q = %q, want %q", key, groups[key], want)
				}
			}
		})
	}
}

func TestIC6000Translate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{
			// Well number padded to 2, site to 3, Blue-FITC is code 02.
			name:     "Round trip to CV7000",
			filename: "E_1_B - 03(fld 4 wv Blue-FITC).tif",
			expected: "E1_B03_T0001F004L01A01Z01C02.tif",
		},
		{
			name:     "Underscores stripped from experiment",
			filename: "20180328_TestAbs_G - 8(fld 4 wv Red - Cy5).tif",
			expected: "20180328TestAbs_G08_T0001F004L01A01Z01C04.tif",
		},
		{
			name:     "Three-digit site kept as is",
			filename: "a_b_C - 12(fld 123 wv Green - dsRed).tif",
			expected: "ab_C12_T0001F123L01A01Z01C03.tif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, ok := IC6000.Match(tt.filename)
			if !ok {
				t.Fatalf("Match(%q) failed", tt.filename)
			}
			fields, err := IC6000.Translate(groups, IC6000.Channels)
			if err != nil {
				t.Fatalf("Translate: %v", err)
			}
			if got := CanonicalName(fields); got != tt.expected {
				t.Errorf("CanonicalName = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIC6000UnknownChannel(t *testing.T) {
	groups, ok := IC6000.Match("E_1_B - 03(fld 4 wv Magenta).tif")
	if !ok {
		t.Fatal("expected pattern match")
	}

	_, err := IC6000.Translate(groups, IC6000.Channels)
	if err == nil {
		t.Fatal("expected error for unknown channel label")
	}

	var chErr *UnknownChannelError
	if !errors.As(err, &chErr) {
		t.Fatalf("expected UnknownChannelError, got %T: %v", err, err)
	}
	if chErr.Label != "Magenta" {
		t.Errorf("Label = %q, want %q", chErr.Label, "Magenta")
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("ic6000"); !ok {
		t.Error("ic6000 not registered")
	}
	if _, ok := Lookup("IC6000"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := Lookup("cv9000"); ok {
		t.Error("unexpected registry entry cv9000")
	}
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"4", 3, "004"},
		{"12", 3, "012"},
		{"123", 3, "123"},
		{"1234", 3, "1234"}, // never truncates
		{"8", 2, "08"},
	}
	for _, tt := range tests {
		if got := zeroPad(tt.input, tt.width); got != tt.expected {
			t.Errorf("zeroPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}
