package catalog

import (
	"errors"
	"testing"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

func TestAddReview_RejectsOutOfRangeRating(t *testing.T) {
	tests := []struct {
		name   string
		rating int
	}{
		{name: "zero", rating: 0},
		{name: "negative", rating: -1},
		{name: "six", rating: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProduct()

			got, err := AddReview(p, domain.ReviewDraft{Rating: tt.rating, Text: "nope"})

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("AddReview() error = %v, want ValidationError", err)
			}
			if len(got.Reviews) != 0 {
				t.Errorf("AddReview() appended a review on failure")
			}
		})
	}
}

func TestAddReview_AssignsIDAndTimestamp(t *testing.T) {
	p := testProduct()

	got, err := AddReview(p, domain.ReviewDraft{Name: "Anita", Rating: 5, Text: "So cute!!"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	if len(got.Reviews) != 1 {
		t.Fatalf("len(Reviews) = %d, want 1", len(got.Reviews))
	}
	review := got.Reviews[0]
	if review.ID == "" {
		t.Error("review id not assigned")
	}
	if review.CreatedAt.IsZero() {
		t.Error("review timestamp not assigned")
	}
	if review.Name != "Anita" || review.Rating != 5 || review.Text != "So cute!!" {
		t.Errorf("review fields not carried over: %+v", review)
	}
}

func TestAddReview_RecomputesRating(t *testing.T) {
	p := testProduct()

	p, err := AddReview(p, domain.ReviewDraft{Rating: 5, Text: "great"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	p, err = AddReview(p, domain.ReviewDraft{Rating: 3, Text: "okay"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	if p.Rating.Count != 2 {
		t.Errorf("Rating.Count = %d, want 2", p.Rating.Count)
	}
	if p.Rating.Avg != 4.0 {
		t.Errorf("Rating.Avg = %v, want 4.0", p.Rating.Avg)
	}
	want := map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 1}
	for star, count := range want {
		if p.Rating.Breakdown[star] != count {
			t.Errorf("Breakdown[%d] = %d, want %d", star, p.Rating.Breakdown[star], count)
		}
	}
}

func TestAddReview_AverageRoundsToOneDecimal(t *testing.T) {
	p := testProduct()

	// 5, 4, 4 -> mean 4.333... -> 4.3
	for _, rating := range []int{5, 4, 4} {
		var err error
		p, err = AddReview(p, domain.ReviewDraft{Rating: rating, Text: "x"})
		if err != nil {
			t.Fatalf("AddReview() error = %v", err)
		}
	}

	if p.Rating.Avg != 4.3 {
		t.Errorf("Rating.Avg = %v, want 4.3", p.Rating.Avg)
	}
}

func TestAddReview_BreakdownSumsToCount(t *testing.T) {
	p := testProduct()

	ratings := []int{1, 5, 3, 3, 4, 5, 2, 5, 1, 4}
	for _, rating := range ratings {
		var err error
		p, err = AddReview(p, domain.ReviewDraft{Rating: rating, Text: "x"})
		if err != nil {
			t.Fatalf("AddReview() error = %v", err)
		}
	}

	if p.Rating.Count != len(ratings) {
		t.Errorf("Rating.Count = %d, want %d", p.Rating.Count, len(ratings))
	}
	sum := 0
	for star := 1; star <= 5; star++ {
		sum += p.Rating.Breakdown[star]
	}
	if sum != len(ratings) {
		t.Errorf("breakdown sum = %d, want %d", sum, len(ratings))
	}
}

func TestAddReview_PreservesInsertionOrder(t *testing.T) {
	p := testProduct()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		var err error
		p, err = AddReview(p, domain.ReviewDraft{Rating: 4, Text: text})
		if err != nil {
			t.Fatalf("AddReview() error = %v", err)
		}
	}

	for i, text := range texts {
		if p.Reviews[i].Text != text {
			t.Errorf("Reviews[%d].Text = %q, want %q", i, p.Reviews[i].Text, text)
		}
	}
}

func TestAddReview_DoesNotMutateInput(t *testing.T) {
	p := testProduct()

	if _, err := AddReview(p, domain.ReviewDraft{Rating: 5, Text: "x"}); err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	if len(p.Reviews) != 0 || p.Rating.Count != 0 {
		t.Errorf("AddReview() mutated the caller's product: %+v", p)
	}
}
