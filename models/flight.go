package models

import "time"

// FlightSegment is a single leg within a flight itinerary item.
type FlightSegment struct {
	FlightNumber  string    `bson:"flightNumber" json:"flightNumber"`
	Airline       string    `bson:"airline,omitempty" json:"airline,omitempty"`
	Origin        string    `bson:"origin" json:"origin"`
	Destination   string    `bson:"destination" json:"destination"`
	DepartureTime time.Time `bson:"departureTime" json:"departureTime"`
	ArrivalTime   time.Time `bson:"arrivalTime" json:"arrivalTime"`
}

// FlightDetails is the ordered segment chain for one flight item.
// Invariant: segment[i+1] departs at segment[i] arrival + layover.
type FlightDetails struct {
	Segments             []FlightSegment `bson:"segments" json:"segments"`
	TotalDurationMinutes int             `bson:"totalDurationMinutes" json:"totalDurationMinutes"`
	IsDirect             bool            `bson:"isDirect" json:"isDirect"`
	ConnectionCity       string          `bson:"connectionCity,omitempty" json:"connectionCity,omitempty"`
}
