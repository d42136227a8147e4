package model

// ReviewVote is a single rating vote on a 0-100 percentage scale.
type ReviewVote struct {
	Percent float64 `json:"percent"`
}

// Review is a customer review with its rating votes.
type Review struct {
	ID       string       `json:"id"`
	Nickname string       `json:"nickname"`
	Votes    []ReviewVote `json:"votes,omitempty"`
}

// ReviewSummary is the store-scoped review aggregate for a product.
type ReviewSummary struct {
	// RatingSummary is the average rating on a 0-100 scale.
	RatingSummary int `json:"rating_summary"`
	ReviewsCount  int `json:"reviews_count"`
}
