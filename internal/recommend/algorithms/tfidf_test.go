// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package algorithms

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"Nail Polish", []string{"nail", "polish"}},
		{"Shampoo & Conditioner", []string{"shampoo", "conditioner"}},
		{"Skin-Care, Face/Body", []string{"skin", "care", "face", "body"}},
		{"Oil for the Hair", []string{"oil", "hair"}},
		{"a b c", []string{}},
		{"", []string{}},
		{"SPF 50", []string{"spf", "50"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFitTFIDF(t *testing.T) {
	t.Parallel()

	model := FitTFIDF([]string{
		"Shampoo Hair Care",
		"Shampoo Hair Care",
		"Lipstick Makeup",
		"",
	})

	if len(model.vectors) != 4 {
		t.Fatalf("len(vectors) = %d, want 4", len(model.vectors))
	}
	if len(model.idf) != 5 {
		t.Errorf("vocabulary size = %d, want 5", len(model.idf))
	}

	// Rarer terms weigh more.
	if model.idf["lipstick"] <= model.idf["shampoo"] {
		t.Errorf("idf(lipstick)=%v should exceed idf(shampoo)=%v", model.idf["lipstick"], model.idf["shampoo"])
	}
	wantIDF := math.Log(5.0/3.0) + 1
	if math.Abs(model.idf["shampoo"]-wantIDF) > 1e-9 {
		t.Errorf("idf(shampoo) = %v, want %v", model.idf["shampoo"], wantIDF)
	}

	for i := 0; i < 3; i++ {
		if n := model.vectors[i].Norm(); math.Abs(n-1) > 1e-9 {
			t.Errorf("vector %d norm = %v, want 1", i, n)
		}
	}
	if len(model.vectors[3]) != 0 {
		t.Errorf("empty document vector = %v, want empty", model.vectors[3])
	}

	sims := model.Similarities(0)
	if math.Abs(sims[1]-1) > 1e-9 {
		t.Errorf("identical docs similarity = %v, want 1", sims[1])
	}
	if sims[2] != 0 || sims[3] != 0 {
		t.Errorf("disjoint docs similarity = %v, %v, want 0", sims[2], sims[3])
	}
}
