package catalog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCatalogClone_Independence(t *testing.T) {
	original := Catalog{
		Meta: Meta{Brand: "Anand Greenwich", Version: SchemaVersion},
		Products: []Product{
			{
				ID:     "p1",
				Name:   "Mini Joy Bear",
				Images: []string{"a.jpg"},
				Rating: Rating{Avg: 5, Count: 1, Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}},
				Reviews: []Review{
					{ID: "r1", Rating: 5, Text: "Lovely.", CreatedAt: time.Now().UTC()},
				},
			},
		},
	}

	clone := original.Clone()
	clone.Products[0].Name = "tampered"
	clone.Products[0].Images[0] = "tampered.jpg"
	clone.Products[0].Rating.Breakdown[5] = 99
	clone.Products[0].Reviews[0].Text = "tampered"

	p := original.Products[0]
	if p.Name != "Mini Joy Bear" {
		t.Error("clone shares product slice")
	}
	if p.Images[0] != "a.jpg" {
		t.Error("clone shares images slice")
	}
	if p.Rating.Breakdown[5] != 1 {
		t.Error("clone shares rating breakdown map")
	}
	if p.Reviews[0].Text != "Lovely." {
		t.Error("clone shares reviews slice")
	}
}

func TestRatingBreakdown_JSONKeys(t *testing.T) {
	r := Rating{Avg: 4.5, Count: 2, Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 1}}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Breakdown keys serialize as the strings "1".."5"
	if !strings.Contains(string(data), `"5":1`) {
		t.Errorf("breakdown keys not stringified: %s", data)
	}

	var back Rating
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Breakdown[4] != 1 || back.Breakdown[5] != 1 {
		t.Errorf("breakdown = %v", back.Breakdown)
	}
}
