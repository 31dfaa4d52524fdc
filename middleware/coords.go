package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wetopinie/models"
)

// CtxUserCoords holds the caller's coordinates when the client supplied them.
const CtxUserCoords = "userCoords"

// CoordinateIntake reads the caller's position from the X-User-Latitude and
// X-User-Longitude headers. Both must parse or neither is used; distance
// ranking degrades gracefully without them.
func CoordinateIntake() gin.HandlerFunc {
	return func(c *gin.Context) {
		latStr := c.GetHeader("X-User-Latitude")
		lngStr := c.GetHeader("X-User-Longitude")
		if latStr != "" && lngStr != "" {
			lat, errLat := strconv.ParseFloat(latStr, 64)
			lng, errLng := strconv.ParseFloat(lngStr, 64)
			if errLat == nil && errLng == nil {
				c.Set(CtxUserCoords, &models.Coordinates{Lat: lat, Lng: lng})
			}
		}
		c.Next()
	}
}

// UserCoords returns the coordinates stored by CoordinateIntake, or nil.
func UserCoords(c *gin.Context) *models.Coordinates {
	if v, ok := c.Get(CtxUserCoords); ok {
		if coords, ok := v.(*models.Coordinates); ok {
			return coords
		}
	}
	return nil
}
