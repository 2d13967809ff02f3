package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/jfertaj/t1d-centers-app/program"
	"github.com/jfertaj/t1d-centers-app/schema"
	"github.com/jfertaj/t1d-centers-app/store"
)

func (s *Server) listProgramRules(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		active = &parsed
	}

	rules, err := s.store.ListProgramRules(c.Query("country"), active)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, rules)
}

func (s *Server) createProgramRule(c *gin.Context) {
	var rule schema.ProgramRule
	if err := c.BindJSON(&rule); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(rule.Country) == "" || strings.TrimSpace(rule.ProgramName) == "" {
		abortWithEncoding(c, http.StatusBadRequest,
			withDetail(errorInvalidParameters, "country and program_name are required"),
			fmt.Errorf("incomplete rule"))
		return
	}

	rule.ID = 0
	if rule.Priority == 0 {
		rule.Priority = 100
	}

	if err := s.store.CreateProgramRule(&rule); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func (s *Server) updateProgramRule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.BindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	rule, err := s.store.UpdateProgramRule(id, fields)
	switch {
	case err == store.ErrNoUpdatableFields:
		abortWithEncoding(c, http.StatusBadRequest, errorNoUpdatableFields)
		return
	case gorm.IsRecordNotFoundError(err):
		abortWithEncoding(c, http.StatusNotFound, errorRuleNotFound)
		return
	case shouldInterupt(err, c):
		return
	}

	c.JSON(http.StatusOK, rule)
}

func (s *Server) deleteProgramRule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := s.store.DeleteProgramRule(id)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRuleNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// matchProgram selects the participation program for a country, postal
// code and optional age. No matching rule is a regular answer, not an
// error.
func (s *Server) matchProgram(c *gin.Context) {
	country := c.Query("country")
	postalCode := c.Query("postal_code")
	if country == "" || postalCode == "" {
		abortWithEncoding(c, http.StatusBadRequest,
			withDetail(errorInvalidParameters, "country and postal_code are required"))
		return
	}

	var age *int
	if raw := c.Query("age"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		age = &parsed
	}

	activeOnly := true
	rules, err := s.store.ListProgramRules(country, &activeOnly)
	if shouldInterupt(err, c) {
		return
	}

	match, ok := program.Select(rules, program.Query{
		Country:    country,
		PostalCode: postalCode,
		Age:        age,
	})
	if !ok {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matched":      true,
		"rule_id":      match.RuleID,
		"program_id":   match.ProgramID,
		"program_name": match.ProgramName,
		"program_url":  match.ProgramURL,
		"message":      match.Message,
	})
}
