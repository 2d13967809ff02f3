package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/jfertaj/t1d-centers-app/api/mocks"
	"github.com/jfertaj/t1d-centers-app/external/geocoder"
	"github.com/jfertaj/t1d-centers-app/schema"
	"github.com/jfertaj/t1d-centers-app/store"
)

func strPtr(s string) *string { return &s }

func TestCreateCenterPersistsExactCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	g.EXPECT().Search("Calle Mayor 1, Madrid, 28013, Spain").Return(&geocoder.Result{
		Partial:          false,
		FormattedAddress: "Calle Mayor, 1, 28013 Madrid, Spain",
		Location:         schema.Location{Latitude: 40.4167, Longitude: -3.7079},
	}, nil).Times(1)

	d.EXPECT().CreateCenter(gomock.Any()).DoAndReturn(func(center *schema.Center) error {
		assert.NotNil(t, center.Latitude, "latitude not set")
		assert.NotNil(t, center.Longitude, "longitude not set")
		assert.Equal(t, 40.4167, *center.Latitude, "wrong latitude")
		assert.Equal(t, -3.7079, *center.Longitude, "wrong longitude")
		center.ID = 12
		return nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/centers", s.createCenter)

	body := `{"name":"Hospital Central","address":"Calle Mayor 1","city":"Madrid","zip_code":"28013","country":"Spain"}`
	req := httptest.NewRequest("POST", "/centers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.Success, "wrong success flag")
	assert.Equal(t, uint(12), jResp.ID, "wrong id")
}

func TestCreateCenterPartialMatchBlocksWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(&geocoder.Result{
		Partial:          true,
		FormattedAddress: "Madrid, Spain",
		Location:         schema.Location{Latitude: 40.4, Longitude: -3.7},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/centers", s.createCenter)

	body := `{"name":"Hospital Central","address":"Calle Inventada 999","city":"Madrid","country":"Spain"}`
	req := httptest.NewRequest("POST", "/centers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")

	var jResp struct {
		OK               bool   `json:"ok"`
		Partial          bool   `json:"partial"`
		FormattedAddress string `json:"formatted_address"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.False(t, jResp.OK, "wrong ok flag")
	assert.True(t, jResp.Partial, "wrong partial flag")
	assert.Equal(t, "Madrid, Spain", jResp.FormattedAddress, "wrong formatted address")
}

func TestCreateCenterNoResultsBlocksWrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(nil, geocoder.ErrNoResults).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/centers", s.createCenter)

	body := `{"name":"Hospital Central","address":"Nowhere 1","country":"Spain"}`
	req := httptest.NewRequest("POST", "/centers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")

	var jResp struct {
		OK     bool   `json:"ok"`
		Reason string `json:"reason"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.False(t, jResp.OK, "wrong ok flag")
	assert.Equal(t, "NO_RESULTS", jResp.Reason, "wrong reason")
}

func TestCreateCenterSkipGeocoding(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)

	s := Server{
		store: d,
	}

	d.EXPECT().CreateCenter(gomock.Any()).DoAndReturn(func(center *schema.Center) error {
		assert.Nil(t, center.Latitude, "latitude should not be set")
		assert.Nil(t, center.Longitude, "longitude should not be set")
		center.ID = 7
		return nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/centers", s.createCenter)

	body := `{"name":"Hospital Central","address":"Calle Mayor 1","country":"Spain","skip_geocoding":true}`
	req := httptest.NewRequest("POST", "/centers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestUpdateCenterContactOnlySkipsGeocoding(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	updated := schema.Center{ID: 5, Name: strPtr("Hospital Central")}
	d.EXPECT().UpdateCenter(uint(5), gomock.Any()).DoAndReturn(
		func(id uint, fields map[string]interface{}) (*schema.Center, error) {
			_, hasLat := fields["latitude"]
			assert.False(t, hasLat, "latitude should not be touched")
			return &updated, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/centers/:id", s.updateCenter)

	body := `{"contact_name_1":"Dr. García","email_1":"garcia@example.org"}`
	req := httptest.NewRequest("PUT", "/centers/5", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateCenterAddressChangeRegeocodesFromIncomingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	g.EXPECT().Search("Gran Via 2, Spain").Return(&geocoder.Result{
		Location: schema.Location{Latitude: 40.42, Longitude: -3.71},
	}, nil).Times(1)

	d.EXPECT().UpdateCenter(uint(5), gomock.Any()).DoAndReturn(
		func(id uint, fields map[string]interface{}) (*schema.Center, error) {
			assert.Equal(t, 40.42, fields["latitude"], "wrong latitude")
			assert.Equal(t, -3.71, fields["longitude"], "wrong longitude")
			return &schema.Center{ID: 5}, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/centers/:id", s.updateCenter)

	body := `{"address":"Gran Via 2","country":"Spain"}`
	req := httptest.NewRequest("PUT", "/centers/5", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateCenterFailedRegeocodeClearsCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)
	g := mocks.NewMockGeocoder(ctl)

	s := Server{
		store:    d,
		geocoder: g,
	}

	g.EXPECT().Search(gomock.Any()).Return(nil, geocoder.ErrNoResults).Times(1)

	d.EXPECT().UpdateCenter(uint(5), gomock.Any()).DoAndReturn(
		func(id uint, fields map[string]interface{}) (*schema.Center, error) {
			assert.Nil(t, fields["latitude"], "latitude should be cleared")
			assert.Nil(t, fields["longitude"], "longitude should be cleared")
			return &schema.Center{ID: 5}, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/centers/:id", s.updateCenter)

	body := `{"address":"Nowhere 1","country":"Spain"}`
	req := httptest.NewRequest("PUT", "/centers/5", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateCenterNoUpdatableFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)

	s := Server{
		store: d,
	}

	d.EXPECT().UpdateCenter(uint(5), gomock.Any()).Return(nil, store.ErrNoUpdatableFields).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/centers/:id", s.updateCenter)

	req := httptest.NewRequest("PUT", "/centers/5", strings.NewReader(`{"bogus":"x"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1101), jResp.Code, "wrong error code")
}

func TestDeleteCenterNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)

	s := Server{
		store: d,
	}

	d.EXPECT().DeleteCenter(uint(99)).Return(gorm.ErrRecordNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/centers/:id", s.deleteCenter)

	req := httptest.NewRequest("DELETE", "/centers/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1100), jResp.Code, "wrong error code")
}

func TestListCenters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockCentersData(ctl)

	s := Server{
		store: d,
	}

	centers := []schema.Center{
		{ID: 2, Name: strPtr("Klinik Nord")},
		{ID: 1, Name: strPtr("Hospital Central")},
	}
	d.EXPECT().ListCenters().Return(centers, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/centers", s.listCenters)

	req := httptest.NewRequest("GET", "/centers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []schema.Center
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp, 2, "wrong count")
	assert.Equal(t, uint(2), jResp[0].ID, "wrong ordering")
}
