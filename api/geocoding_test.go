package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/jfertaj/t1d-centers-app/api/mocks"
	"github.com/jfertaj/t1d-centers-app/external/geocoder"
	"github.com/jfertaj/t1d-centers-app/schema"
)

func TestVerifyGeocodingExactMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		geocoder: g,
	}

	g.EXPECT().Search("Hauptstrasse 5, Berlin, 10115, Germany").Return(&geocoder.Result{
		Partial:          false,
		FormattedAddress: "Hauptstraße 5, 10115 Berlin, Germany",
		Location:         schema.Location{Latitude: 52.53, Longitude: 13.38},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	body := `{"address":"Hauptstrasse 5","city":"Berlin","zip_code":"10115","country":"Germany"}`
	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		OK               bool            `json:"ok"`
		Partial          bool            `json:"partial"`
		FormattedAddress string          `json:"formatted_address"`
		Location         schema.Location `json:"location"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.OK, "wrong ok flag")
	assert.False(t, jResp.Partial, "wrong partial flag")
	assert.Equal(t, 52.53, jResp.Location.Latitude, "wrong latitude")
}

func TestVerifyGeocodingPartialMatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(&geocoder.Result{
		Partial:          true,
		FormattedAddress: "Berlin, Germany",
		Location:         schema.Location{Latitude: 52.5, Longitude: 13.4},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	body := `{"address":"Erfundene Allee 999","city":"Berlin","country":"Germany"}`
	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		OK      bool `json:"ok"`
		Partial bool `json:"partial"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.False(t, jResp.OK, "wrong ok flag")
	assert.True(t, jResp.Partial, "wrong partial flag")
}

func TestVerifyGeocodingNoResults(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(nil, geocoder.ErrNoResults).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	body := `{"address":"xxxyyzz","country":"Germany"}`
	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		OK     bool   `json:"ok"`
		Reason string `json:"reason"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.False(t, jResp.OK, "wrong ok flag")
	assert.Equal(t, "NO_RESULTS", jResp.Reason, "wrong reason")
}

func TestVerifyGeocodingUpstreamError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(nil, errors.New("OVER_QUERY_LIMIT")).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	body := `{"address":"Hauptstrasse 5","country":"Germany"}`
	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1300), jResp.Code, "wrong error code")
}

func TestVerifyGeocodingEmptyAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestVerifyGeocodingMissingKey(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/geocoding/verify", s.verifyGeocoding)

	body := `{"address":"Hauptstrasse 5","country":"Germany"}`
	req := httptest.NewRequest("POST", "/geocoding/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1012), jResp.Code, "wrong error code")
	assert.Contains(t, jResp.Message, "CENTERS_GEOCODER_KEY", "wrong message detail")
}
