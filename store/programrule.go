package store

import (
	"github.com/jinzhu/gorm"

	"github.com/jfertaj/t1d-centers-app/schema"
)

// ruleColumns are the updatable columns of program_rules. Unlike the
// centers table the rule table has a fixed shape.
var ruleColumns = map[string]struct{}{
	"country":        {},
	"postal_pattern": {},
	"age_from":       {},
	"age_to":         {},
	"type_of_ed":     {},
	"program_id":     {},
	"program_name":   {},
	"program_url":    {},
	"message":        {},
	"priority":       {},
	"active":         {},
}

// ListProgramRules returns rules ordered by priority then insertion order,
// optionally filtered by country and active flag.
func (s *CentersStore) ListProgramRules(country string, active *bool) ([]schema.ProgramRule, error) {
	query := s.ormDB.Order("priority asc, id asc")
	if country != "" {
		query = query.Where("country = ?", country)
	}
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	var rules []schema.ProgramRule
	if err := query.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *CentersStore) CreateProgramRule(rule *schema.ProgramRule) error {
	return s.ormDB.Create(rule).Error
}

func (s *CentersStore) UpdateProgramRule(id uint, fields map[string]interface{}) (*schema.ProgramRule, error) {
	updates := make(map[string]interface{})
	for k, v := range fields {
		if _, ok := ruleColumns[k]; ok {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return nil, ErrNoUpdatableFields
	}

	var rule schema.ProgramRule
	if err := s.ormDB.Where("id = ?", id).First(&rule).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(&rule).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Where("id = ?", id).First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (s *CentersStore) DeleteProgramRule(id uint) error {
	result := s.ormDB.Delete(schema.ProgramRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
