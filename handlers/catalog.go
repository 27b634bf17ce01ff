package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListHospitalsHandler lists hospitals, optionally only the featured set.
// GET /api/hospitals?featured=true
func (h *HandlerBundle) ListHospitalsHandler(c *gin.Context) {
	featured := c.Query("featured") == "true"
	hospitals, err := h.CatalogSvc.ListHospitals(c.Request.Context(), featured)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hospitals": hospitals})
}

// GetHospitalHandler returns one hospital.
// GET /api/hospitals/:id
func (h *HandlerBundle) GetHospitalHandler(c *gin.Context) {
	hospital, err := h.CatalogSvc.GetHospital(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hospital": hospital})
}

// SearchHospitalsHandler searches hospitals by name or specialty.
// GET /api/hospitals/search?q=...
func (h *HandlerBundle) SearchHospitalsHandler(c *gin.Context) {
	hospitals, err := h.CatalogSvc.SearchHospitals(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hospitals": hospitals})
}

// ListDoctorsHandler lists doctors, scoped to a hospital when given.
// GET /api/doctors?hospitalId=...
func (h *HandlerBundle) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.CatalogSvc.ListDoctors(c.Request.Context(), c.Query("hospitalId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "doctors": doctors})
}

// GetDoctorHandler returns one doctor.
// GET /api/doctors/:id
func (h *HandlerBundle) GetDoctorHandler(c *gin.Context) {
	doctor, err := h.CatalogSvc.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "doctor": doctor})
}

// SearchFlightsHandler searches the flight catalog by route.
// GET /api/search/flights?origin=...&destination=...
func (h *HandlerBundle) SearchFlightsHandler(c *gin.Context) {
	flights, err := h.CatalogSvc.SearchFlights(c.Request.Context(), c.Query("origin"), c.Query("destination"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "flights": flights})
}

// SearchHotelsHandler searches the hotel catalog by city.
// GET /api/search/hotels?city=...
func (h *HandlerBundle) SearchHotelsHandler(c *gin.Context) {
	hotels, err := h.CatalogSvc.SearchHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotels": hotels})
}

// ListAttractionsHandler lists featured attractions, scoped to a city when
// given.
// GET /api/attractions?city=...
func (h *HandlerBundle) ListAttractionsHandler(c *gin.Context) {
	attractions, err := h.CatalogSvc.ListAttractions(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "attractions": attractions})
}
