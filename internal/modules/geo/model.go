// README: Resolver result shapes.
package geo

// Place is one ranked address-search result.
type Place struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
