// README: Static rate table and quote shapes for the fare estimator.
package fare

// Option is one platform/vehicle-class rate entry.
type Option struct {
	Name     string
	PerKm    float64
	BaseFare float64
}

// Options is the full rate table. Order matters: ties between quotes keep
// this order, so entries must not be rearranged.
var Options = []Option{
	{Name: "Ola Auto", PerKm: 18, BaseFare: 11},
	{Name: "Ola Mini", PerKm: 25, BaseFare: 35},
	{Name: "Ola Prime", PerKm: 28, BaseFare: 45},
	{Name: "Uber Auto", PerKm: 14, BaseFare: 10},
	{Name: "Uber Go", PerKm: 22, BaseFare: 32},
	{Name: "Uber Premier", PerKm: 30, BaseFare: 42},
}

// Breakdown itemizes a quote.
type Breakdown struct {
	BaseFare     float64 `json:"baseFare"`
	DistanceCost float64 `json:"distanceCost"`
}

// Quote is one fare estimate. Fare carries the total formatted to two
// decimals, which is the wire contract the frontend renders verbatim.
type Quote struct {
	Type      string    `json:"type"`
	Fare      string    `json:"fare"`
	Breakdown Breakdown `json:"breakdown"`

	// amount is the rounded numeric total, kept for sorting.
	amount float64
}

// Result is the full quote list sorted ascending by fare, with Cheapest
// pointing at the first element.
type Result struct {
	AllFares []Quote `json:"allFares"`
	Cheapest *Quote  `json:"cheapest"`
}
