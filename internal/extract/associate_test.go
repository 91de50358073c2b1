// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "testing"

func TestAssociateTitle(t *testing.T) {
	titles := []TitleMatch{
		{Text: "Table 1: Alpha", Top: 10},
		{Text: "Table 2: Beta", Top: 50},
		{Text: "Table 3: Gamma", Top: 90},
	}

	tests := []struct {
		name     string
		tableTop float64
		want     string
		wantOK   bool
	}{
		{"closest above wins", 60, "Table 2: Beta", true},
		{"last title above", 100, "Table 3: Gamma", true},
		{"first title above", 30, "Table 1: Alpha", true},
		{"nothing above", 5, "", false},
		{"equal top does not qualify", 10, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AssociateTitle(titles, tt.tableTop)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Text != tt.want {
				t.Errorf("title = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestAssociateTitleNoTitles(t *testing.T) {
	if _, ok := AssociateTitle(nil, 100); ok {
		t.Error("expected no match on a page without titles")
	}
}

func TestAssociateTitleTieBreak(t *testing.T) {
	// Two matches at the same vertical position: the first one in scan
	// order wins, deterministically.
	titles := []TitleMatch{
		{Text: "Table 5: Left", Top: 40},
		{Text: "Table 6: Right", Top: 40},
	}

	got, ok := AssociateTitle(titles, 60)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Text != "Table 5: Left" {
		t.Errorf("title = %q, want %q (first in scan order)", got.Text, "Table 5: Left")
	}
}
