package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/jfertaj/t1d-centers-app/external/geocoder"
	"github.com/jfertaj/t1d-centers-app/schema"
	"github.com/jfertaj/t1d-centers-app/store"
)

func (s *Server) listCenters(c *gin.Context) {
	centers, err := s.store.ListCenters()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, centers)
}

// createCenter registers a center. The joined address is geocoded first;
// an ambiguous (partial) result or an empty result set blocks the write
// and surfaces the candidate to the caller. The skip_geocoding flag keeps
// the historical data-layer behavior of allowing direct writers through.
func (s *Server) createCenter(c *gin.Context) {
	var body struct {
		schema.Center
		SkipGeocoding bool `json:"skip_geocoding"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	center := body.Center
	center.ID = 0
	center.Latitude = nil
	center.Longitude = nil

	full := joinedAddress(&center)
	if !body.SkipGeocoding && full != "" {
		result, failed := s.geocodeOrAbort(c, full)
		if failed {
			return
		}
		center.Latitude = &result.Location.Latitude
		center.Longitude = &result.Location.Longitude
	}

	if err := s.store.CreateCenter(&center); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      center.ID,
	})
}

// updateCenter applies a partial update. When any address field is part of
// the update the center is re-geocoded from the incoming values; a failed
// re-geocode clears the coordinates so the record is never silently stale.
func (s *Server) updateCenter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.BindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if addressChanged(fields) {
		if s.geocoder == nil {
			abortWithEncoding(c, http.StatusInternalServerError,
				withDetail(errorConfigMissing, "CENTERS_GEOCODER_KEY is not set"))
			return
		}
		full := geocoder.JoinParts(
			stringField(fields, "address"),
			stringField(fields, "city"),
			stringField(fields, "zip_code"),
			stringField(fields, "country"),
		)
		fields["latitude"] = nil
		fields["longitude"] = nil
		if full != "" {
			if result, err := s.geocoder.Search(full); err == nil && !result.Partial {
				fields["latitude"] = result.Location.Latitude
				fields["longitude"] = result.Location.Longitude
			}
		}
	}

	center, err := s.store.UpdateCenter(id, fields)
	switch {
	case err == store.ErrNoUpdatableFields:
		abortWithEncoding(c, http.StatusBadRequest, errorNoUpdatableFields)
		return
	case gorm.IsRecordNotFoundError(err):
		abortWithEncoding(c, http.StatusNotFound, errorCenterNotFound)
		return
	case shouldInterupt(err, c):
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"center":  center,
	})
}

func (s *Server) deleteCenter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := s.store.DeleteCenter(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorCenterNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// geocodeOrAbort resolves an address and writes the blocking responses for
// the three non-exact outcomes. It reports failed=true when the request
// has been answered.
func (s *Server) geocodeOrAbort(c *gin.Context, full string) (*geocoder.Result, bool) {
	if s.geocoder == nil {
		abortWithEncoding(c, http.StatusInternalServerError,
			withDetail(errorConfigMissing, "CENTERS_GEOCODER_KEY is not set"))
		return nil, true
	}

	result, err := s.geocoder.Search(full)
	if err == geocoder.ErrNoResults {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"ok":                false,
			"partial":           false,
			"reason":            "NO_RESULTS",
			"formatted_address": nil,
			"location":          nil,
		})
		return nil, true
	}
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorGeocodeUnavailable, err)
		return nil, true
	}
	if result.Partial {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"ok":                false,
			"partial":           true,
			"formatted_address": result.FormattedAddress,
			"location":          result.Location,
		})
		return nil, true
	}

	return result, false
}

func joinedAddress(center *schema.Center) string {
	return geocoder.JoinParts(
		strValue(center.Address),
		strValue(center.City),
		strValue(center.ZipCode),
		strValue(center.Country),
	)
}

func addressChanged(fields map[string]interface{}) bool {
	for _, key := range schema.CenterAddressColumns {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}
