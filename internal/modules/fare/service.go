// README: Fare estimator: applies the rate table to a route distance.
package fare

import (
	"fmt"
	"math"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate prices all six options for the given distance and returns them
// sorted ascending by total fare. Distance is trusted to be a finite
// non-negative number; validation belongs to the caller.
func (s *Service) Estimate(distanceKm float64) Result {
	quotes := make([]Quote, 0, len(Options))
	for _, opt := range Options {
		distanceCost := distanceKm * opt.PerKm
		total := round2(opt.BaseFare + distanceCost)
		quotes = append(quotes, Quote{
			Type: opt.Name,
			Fare: fmt.Sprintf("%.2f", total),
			Breakdown: Breakdown{
				BaseFare:     opt.BaseFare,
				DistanceCost: round2(distanceCost),
			},
			amount: total,
		})
	}

	// Stable on ties, so equal fares keep rate-table order.
	sortByAmount(quotes, func(q Quote) float64 { return q.amount })

	return Result{AllFares: quotes, Cheapest: &quotes[0]}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortByAmount performs an insertion sort (fine for small N) on any slice
// where each element exposes its sort key via the accessor function.
func sortByAmount[T any](items []T, key func(T) float64) {
	for i := 1; i < len(items); i++ {
		cur := items[i]
		j := i - 1
		for j >= 0 && key(items[j]) > key(cur) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = cur
	}
}
