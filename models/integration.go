package models

import "time"

// WeatherData is the normalized snapshot returned by the weather provider.
type WeatherData struct {
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feelsLike"`
	Humidity      int       `json:"humidity"`
	Pressure      int       `json:"pressure"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection int       `json:"windDirection"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Visibility    int       `json:"visibility"`
	Timestamp     time.Time `json:"timestamp"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
}

// ExchangeRates is a base currency's rate table at a point in time.
type ExchangeRates struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp time.Time          `json:"timestamp"`
}

// CurrencyConversion is the outcome of converting an amount between currencies.
type CurrencyConversion struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
}
