package core

import "testing"

func TestBrandProfileActive(t *testing.T) {
	tests := []struct {
		name    string
		profile *BrandProfile
		want    bool
	}{
		{"nil profile", nil, false},
		{"empty tone", &BrandProfile{BrandName: "Glow Co"}, false},
		{"whitespace tone", &BrandProfile{ToneOfVoice: "   "}, false},
		{"with tone", &BrandProfile{ToneOfVoice: "warm and direct"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormulaPartsHaveDescriptions(t *testing.T) {
	for formula := range FormulaParts {
		if _, ok := FormulaDescriptions[formula]; !ok {
			t.Errorf("formula %q has parts but no description", formula)
		}
	}
	for formula := range FormulaDescriptions {
		if _, ok := FormulaParts[formula]; !ok {
			t.Errorf("formula %q has a description but no parts", formula)
		}
	}
}

func TestDefaultCTAStyleListed(t *testing.T) {
	for _, style := range CTAStyles {
		if style == DefaultCTAStyle {
			return
		}
	}
	t.Errorf("default CTA style %q is not in the catalog", DefaultCTAStyle)
}

func TestAspectRatioValue(t *testing.T) {
	if got := AspectRatioValue("9:16 (Vertical)"); got != "9:16" {
		t.Errorf("expected 9:16, got %s", got)
	}
	if got := AspectRatioValue("something else"); got != DefaultAspectRatio {
		t.Errorf("expected default %s for unknown label, got %s", DefaultAspectRatio, got)
	}
}
