package domain

// SearchResponse represents the response from a direct flight search.
type SearchResponse struct {
	// SearchCriteria echoes the original search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Flights contains the flight records found
	Flights []FlightRecord `json:"flights"`
}

// SearchMetadata contains metadata about a search execution.
type SearchMetadata struct {
	// TotalResults is the total number of records returned
	TotalResults int `json:"total_results"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the results came from cache
	CacheHit bool `json:"cache_hit"`
}

// NewSearchResponse creates a SearchResponse for the given criteria and
// records. A nil record slice is normalized to an empty one.
func NewSearchResponse(criteria SearchCriteria, flights []FlightRecord, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []FlightRecord{}
	}
	metadata.TotalResults = len(flights)

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Flights:        flights,
	}
}
