package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfertaj/t1d-centers-app/external/geocoder"
	"github.com/jfertaj/t1d-centers-app/schema"
	"github.com/jfertaj/t1d-centers-app/store"
)

func (s *Server) listColumns(c *gin.Context) {
	table := c.DefaultQuery("table", schema.CentersTable)

	columns, err := s.store.ListColumns(table)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err.Error()), err)
		return
	}

	c.JSON(http.StatusOK, columns)
}

// addColumns applies admin-requested columns. Validation failures come
// back as 400 with the specific reason; nothing reaches the database in
// that case.
func (s *Server) addColumns(c *gin.Context) {
	var body struct {
		Table   string              `json:"table"`
		Columns []schema.ColumnSpec `json:"columns"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if body.Table == "" {
		body.Table = schema.CentersTable
	}
	if len(body.Columns) == 0 {
		abortWithEncoding(c, http.StatusBadRequest,
			withDetail(errorInvalidParameters, "no columns requested"))
		return
	}

	added := make([]string, 0, len(body.Columns))
	for _, spec := range body.Columns {
		normalized, _, err := store.ValidateColumnSpec(spec)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidParameters, err.Error()), err)
			return
		}
		added = append(added, normalized.Name)
	}

	if err := s.store.AddColumns(body.Table, body.Columns); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"columns": added,
	})
}

func (s *Server) addSchema(c *gin.Context) {
	if err := s.store.EnsureStandardColumns(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) recreateCenters(c *gin.Context) {
	if err := s.store.RecreateCenters(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": schema.CentersTable + " recreated",
	})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.store.Stats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

type regeoResult struct {
	ID     uint   `json:"id"`
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// regeoMissing walks every center without coordinates and retries the
// geocode-and-write sequence one center at a time. Individual failures
// are collected into the report instead of aborting the batch; rows
// already written stay written.
func (s *Server) regeoMissing(c *gin.Context) {
	if s.geocoder == nil {
		abortWithEncoding(c, http.StatusInternalServerError,
			withDetail(errorConfigMissing, "CENTERS_GEOCODER_KEY is not set"))
		return
	}

	centers, err := s.store.ListCentersMissingCoordinates()
	if shouldInterupt(err, c) {
		return
	}

	results := make([]regeoResult, 0, len(centers))
	for i := range centers {
		center := &centers[i]
		results = append(results, s.regeoOne(center))
	}

	c.JSON(http.StatusOK, gin.H{
		"attempted": len(centers),
		"results":   results,
	})
}

func (s *Server) regeoOne(center *schema.Center) regeoResult {
	full := joinedAddress(center)
	if full == "" {
		return regeoResult{ID: center.ID, Status: "no_address"}
	}

	result, err := s.geocoder.Search(full)
	if err == geocoder.ErrNoResults {
		return regeoResult{ID: center.ID, Status: "no_results"}
	}
	if err != nil {
		log.WithError(err).WithField("center", center.ID).Warn("regeo lookup failed")
		return regeoResult{ID: center.ID, Status: "geocode_error"}
	}
	if result.Partial {
		return regeoResult{ID: center.ID, Status: "partial_match"}
	}

	if err := s.store.UpdateCenterCoordinates(center.ID,
		&result.Location.Latitude, &result.Location.Longitude); err != nil {
		log.WithError(err).WithField("center", center.ID).Warn("regeo update failed")
		return regeoResult{ID: center.ID, Status: "update_error"}
	}

	return regeoResult{ID: center.ID, OK: true, Status: "updated"}
}
