package catalog

import (
	"math"
	"time"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// AddReview appends a review to the product and recomputes its rating
// summary. The review gets a generated id and timestamp; reviews are
// append-only and never edited or removed here. The caller's product is
// left untouched.
func AddReview(p domain.Product, draft domain.ReviewDraft) (domain.Product, error) {
	if draft.Rating < 1 || draft.Rating > 5 {
		return p, &ValidationError{Field: "rating", Reason: "must be an integer between 1 and 5"}
	}

	review := domain.Review{
		ID:        NewID(),
		Name:      draft.Name,
		Rating:    draft.Rating,
		Text:      draft.Text,
		CreatedAt: time.Now().UTC(),
	}
	if len(draft.Images) > 0 {
		review.Images = append([]string(nil), draft.Images...)
	}

	next := p.Clone()
	next.Reviews = append(next.Reviews, review)
	next.Rating = summarizeReviews(next.Reviews)
	return next, nil
}

// summarizeReviews derives the rating summary from the full review list:
// mean rounded to one decimal, per-star histogram, and total count.
func summarizeReviews(reviews []domain.Review) domain.Rating {
	rating := domain.EmptyRating()
	if len(reviews) == 0 {
		return rating
	}

	total := 0
	for _, r := range reviews {
		rating.Breakdown[r.Rating]++
		total += r.Rating
	}
	rating.Count = len(reviews)
	rating.Avg = math.Round(float64(total)/float64(len(reviews))*10) / 10
	return rating
}
