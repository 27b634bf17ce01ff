package handlers

import (
	"net/http"
	"strconv"

	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

// GetWeatherHandler returns the current weather for a city.
// GET /api/weather?city=...
func (h *HandlerBundle) GetWeatherHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "City is required", "")
		return
	}
	weather, err := h.WeatherSvc.GetCurrentWeather(c.Request.Context(), city)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Weather lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "weather": weather})
}

// GetWeatherForecastHandler returns a daily forecast for a city.
// GET /api/weather/forecast?city=...&days=5
func (h *HandlerBundle) GetWeatherForecastHandler(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "City is required", "")
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "5"))

	forecast, err := h.WeatherSvc.GetForecast(c.Request.Context(), city, days)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Forecast lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "forecast": forecast})
}

// GetExchangeRatesHandler returns the rate table for a base currency.
// GET /api/exchange?base=USD
func (h *HandlerBundle) GetExchangeRatesHandler(c *gin.Context) {
	rates, err := h.RatesSvc.GetRates(c.Request.Context(), c.DefaultQuery("base", "USD"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Exchange rate lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rates": rates})
}

// ConvertCurrencyHandler converts an amount between currencies.
// GET /api/exchange/convert?amount=100&from=USD&to=CNY
func (h *HandlerBundle) ConvertCurrencyHandler(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount < 0 {
		utils.JSONError(c, http.StatusBadRequest, "A non-negative amount is required", "")
		return
	}
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "Both from and to currencies are required", "")
		return
	}

	conversion, err := h.RatesSvc.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Currency conversion failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversion": conversion})
}
