package usecase

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "rice",
			b:    "rice",
			want: 1.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "one empty",
			a:    "rice",
			b:    "",
			want: 0,
		},
		{
			name: "disjoint strings",
			a:    "xyz",
			b:    "abc",
			want: 0,
		},
		{
			name: "substring",
			a:    "rice",
			b:    "fried rice",
			want: 2.0 * 4 / 14,
		},
		{
			name: "shared prefix and suffix",
			a:    "tomato sauce",
			b:    "tomato paste",
			want: 2.0 * 9 / 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"egusi", "egusi seeds"},
		{"palm oil", "vegetable oil"},
		{"tomato", "tomato paste"},
	}
	for _, p := range pairs {
		if ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0]); ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_Ordering(t *testing.T) {
	// A closer variant must score higher than a distant one.
	near := Similarity("tomato paste", "tomato past")
	far := Similarity("tomato paste", "palm oil")
	if near <= far {
		t.Errorf("expected close variant (%v) to outscore distant one (%v)", near, far)
	}
}
