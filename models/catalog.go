package models

import "time"

// Hospital is a treatment destination in the catalog.
type Hospital struct {
	ID          string    `bson:"id" json:"id"`
	NameEn      string    `bson:"nameEn" json:"nameEn"`
	NameZh      string    `bson:"nameZh,omitempty" json:"nameZh,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Level       string    `bson:"level,omitempty" json:"level,omitempty"` // Grade 3A, Grade 3B, ...
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Location    string    `bson:"location" json:"location"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsFeatured  bool      `bson:"isFeatured" json:"isFeatured"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Doctor belongs to a hospital and carries the base consultation fee used by
// the fee reconciler's baseline policy.
type Doctor struct {
	ID              string    `bson:"id" json:"id"`
	HospitalID      string    `bson:"hospitalId" json:"hospitalId"`
	NameEn          string    `bson:"nameEn" json:"nameEn"`
	NameZh          string    `bson:"nameZh,omitempty" json:"nameZh,omitempty"`
	Title           string    `bson:"title,omitempty" json:"title,omitempty"`
	Specialties     []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	ExperienceYears int       `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`
	ConsultationFee float64   `bson:"consultationFee" json:"consultationFee"`
	IsFeatured      bool      `bson:"isFeatured" json:"isFeatured"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Hotel is a bookable accommodation near a hospital.
type Hotel struct {
	ID                string    `bson:"id" json:"id"`
	NameEn            string    `bson:"nameEn" json:"nameEn"`
	City              string    `bson:"city" json:"city"`
	Location          string    `bson:"location" json:"location"`
	StarRating        int       `bson:"starRating,omitempty" json:"starRating,omitempty"`
	BasePricePerNight float64   `bson:"basePricePerNight" json:"basePricePerNight"`
	Currency          string    `bson:"currency" json:"currency"`
	DistanceToKm      float64   `bson:"distanceToHospitalKm,omitempty" json:"distanceToHospitalKm,omitempty"`
	IsFeatured        bool      `bson:"isFeatured" json:"isFeatured"`
	IsActive          bool      `bson:"isActive" json:"isActive"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Flight is a catalog flight row used by search.
type Flight struct {
	ID              string    `bson:"id" json:"id"`
	FlightNumber    string    `bson:"flightNumber" json:"flightNumber"`
	Airline         string    `bson:"airline" json:"airline"`
	Origin          string    `bson:"origin" json:"origin"`
	Destination     string    `bson:"destination" json:"destination"`
	DepartureTime   time.Time `bson:"departureTime" json:"departureTime"`
	ArrivalTime     time.Time `bson:"arrivalTime" json:"arrivalTime"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Currency        string    `bson:"currency" json:"currency"`
	AvailableSeats  int       `bson:"availableSeats" json:"availableSeats"`
	ClassType       string    `bson:"classType" json:"classType"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
}

// Attraction is a sightseeing option recommended around treatment dates.
type Attraction struct {
	ID          string    `bson:"id" json:"id"`
	NameEn      string    `bson:"nameEn" json:"nameEn"`
	City        string    `bson:"city" json:"city"`
	Location    string    `bson:"location" json:"location"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	TicketPrice float64   `bson:"ticketPrice" json:"ticketPrice"`
	Currency    string    `bson:"currency" json:"currency"`
	IsFeatured  bool      `bson:"isFeatured" json:"isFeatured"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
