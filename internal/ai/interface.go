package ai

import "context"

// QuoteSummary is the slice of a fare quote the advisor needs.
type QuoteSummary struct {
	Type string `json:"type"`
	Fare string `json:"fare"`
}

// Advice is the structured recommendation returned by the model.
type Advice struct {
	RecommendedType string `json:"recommended_type"`
	Reason          string `json:"reason"`
}

// Advisor picks a ride option for a trip given the quoted fares.
type Advisor interface {
	RecommendRide(ctx context.Context, pickup, dropoff string, quotes []QuoteSummary) (*Advice, error)
	Close()
}
