package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wetopinie/middleware"
	"wetopinie/models"
	"wetopinie/services/directory"
)

// SearchClinicsHandler evaluates the filter criteria from the request body
// against the directory and returns the ranked result set.
func SearchClinicsHandler(svc directory.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var criteria models.FilterCriteria
		if err := c.ShouldBindJSON(&criteria); err != nil {
			logger.Error("Invalid search request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Search(c.Request.Context(), criteria, middleware.UserCoords(c))
		if err != nil {
			logger.Error("Clinic search failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"noActiveFilter": result.NoActiveFilter,
			"clinics":        result.Clinics,
			"distances":      result.Distances,
		})
	}
}

// GetClinicHandler returns details for a single clinic.
func GetClinicHandler(svc directory.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		id := c.Param("id")

		clinic, err := svc.Clinic(c.Request.Context(), id)
		if err != nil {
			logger.Error("Clinic not found", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Clinic not found"})
			return
		}
		c.JSON(http.StatusOK, clinic)
	}
}

// GetCitiesHandler lists known cities, nearest first when the caller's
// position is available.
func GetCitiesHandler(svc directory.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		cities, err := svc.Cities(c.Request.Context(), middleware.UserCoords(c))
		if err != nil {
			logger.Error("Failed to list cities", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cities"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cities": cities})
	}
}

// GetSpecializationsHandler lists the distinct specialization tags.
func GetSpecializationsHandler(svc directory.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		specs, err := svc.Specializations(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list specializations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list specializations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"specializations": specs})
	}
}

// GetFilterStateHandler loads the caller's persisted filter state.
func GetFilterStateHandler(store *directory.FilterStateStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		state, err := store.Load(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			logger.Error("Failed to load filter state", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter state"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// SaveFilterStateHandler persists the caller's filter state.
func SaveFilterStateHandler(store *directory.FilterStateStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var state models.SavedFilterState
		if err := c.ShouldBindJSON(&state); err != nil {
			logger.Error("Invalid filter state payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := store.Save(c.Request.Context(), middleware.SessionID(c), state); err != nil {
			logger.Error("Failed to save filter state", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save filter state"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "saved"})
	}
}

// ClearFilterStateHandler drops the caller's persisted filter state.
func ClearFilterStateHandler(store *directory.FilterStateStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := store.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
			logger.Error("Failed to clear filter state", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear filter state"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}
