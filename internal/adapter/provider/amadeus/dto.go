package amadeus

// tokenResponse is the OAuth2 client-credentials token grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// offersResponse is the flight-offers-search response envelope.
type offersResponse struct {
	Data []Offer `json:"data"`
}

// Offer is a single priced flight offer. One itinerary means one-way;
// two mean a round trip (outbound then return).
type Offer struct {
	ID                    string            `json:"id"`
	NumberOfBookableSeats int               `json:"numberOfBookableSeats"`
	Itineraries           []OfferItinerary  `json:"itineraries"`
	Price                 OfferPrice        `json:"price"`
	TravelerPricings      []TravelerPricing `json:"travelerPricings"`
}

// OfferItinerary is one direction of travel within an offer.
type OfferItinerary struct {
	// Duration is an ISO-8601 duration, e.g. "PT2H30M"
	Duration string         `json:"duration"`
	Segments []OfferSegment `json:"segments"`
}

// OfferSegment is one flown leg.
type OfferSegment struct {
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`

	// CarrierCode is the IATA airline code (e.g., "F9")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number without the carrier prefix
	Number string `json:"number"`

	Aircraft AircraftInfo `json:"aircraft"`
}

// SegmentPoint is a departure or arrival airport and instant.
type SegmentPoint struct {
	IataCode string `json:"iataCode"`

	// At is the local departure/arrival instant, e.g. "2025-06-15T14:30:00"
	At string `json:"at"`
}

// AircraftInfo identifies the aircraft type.
type AircraftInfo struct {
	Code string `json:"code"`
}

// OfferPrice is the total price for the whole offer.
type OfferPrice struct {
	// Total is the decimal price as a string, e.g. "89.40"
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// TravelerPricing carries per-traveler fare details.
type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

// FareDetail describes the fare booked on one segment.
type FareDetail struct {
	Cabin     string `json:"cabin"`
	FareBasis string `json:"fareBasis"`
	Class     string `json:"class"`
}
