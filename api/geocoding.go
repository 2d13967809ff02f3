package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfertaj/t1d-centers-app/external/geocoder"
)

// verifyGeocoding is the pre-submit check used by the registration form.
// It classifies the collaborator's answer without writing anything.
func (s *Server) verifyGeocoding(c *gin.Context) {
	var body struct {
		Address string `json:"address"`
		City    string `json:"city"`
		ZipCode string `json:"zip_code"`
		Country string `json:"country"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	full := geocoder.JoinParts(body.Address, body.City, body.ZipCode, body.Country)
	if full == "" {
		abortWithEncoding(c, http.StatusBadRequest,
			withDetail(errorInvalidParameters, "missing address pieces"))
		return
	}

	if s.geocoder == nil {
		abortWithEncoding(c, http.StatusInternalServerError,
			withDetail(errorConfigMissing, "CENTERS_GEOCODER_KEY is not set"))
		return
	}

	result, err := s.geocoder.Search(full)
	if err == geocoder.ErrNoResults {
		c.JSON(http.StatusOK, gin.H{
			"ok":                false,
			"reason":            "NO_RESULTS",
			"partial":           false,
			"formatted_address": nil,
			"location":          nil,
		})
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorGeocodeUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                !result.Partial,
		"partial":           result.Partial,
		"formatted_address": result.FormattedAddress,
		"location":          result.Location,
	})
}
