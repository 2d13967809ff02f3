package store

import (
	"github.com/jinzhu/gorm"

	"github.com/jfertaj/t1d-centers-app/schema"
)

// ListCenters returns every center, newest first.
func (s *CentersStore) ListCenters() ([]schema.Center, error) {
	var centers []schema.Center
	if err := s.ormDB.Order("id desc").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

// CreateCenter inserts a center and fills in its generated id.
func (s *CentersStore) CreateCenter(center *schema.Center) error {
	return s.ormDB.Create(center).Error
}

// UpdateCenter applies a partial update. Incoming keys are filtered against
// the live column set of the centers table so that admin-added columns are
// writable without a code change while unknown keys are dropped instead of
// reaching the statement.
func (s *CentersStore) UpdateCenter(id uint, fields map[string]interface{}) (*schema.Center, error) {
	columns, err := s.tableColumnSet(schema.CentersTable)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	for k, v := range fields {
		if k == "id" {
			continue
		}
		if _, ok := columns[k]; ok {
			updates[k] = v
		}
	}
	if len(updates) == 0 {
		return nil, ErrNoUpdatableFields
	}

	var center schema.Center
	if err := s.ormDB.Where("id = ?", id).First(&center).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(&center).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.ormDB.Where("id = ?", id).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

// DeleteCenter removes a center permanently.
func (s *CentersStore) DeleteCenter(id uint) error {
	result := s.ormDB.Delete(schema.Center{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCentersMissingCoordinates returns the centers the bulk re-geocode
// operation still has to resolve.
func (s *CentersStore) ListCentersMissingCoordinates() ([]schema.Center, error) {
	var centers []schema.Center
	if err := s.ormDB.
		Where("latitude IS NULL OR longitude IS NULL").
		Order("id").
		Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

// UpdateCenterCoordinates overwrites the coordinate pair only. Nil values
// store NULL, marking the center as not geocoded.
func (s *CentersStore) UpdateCenterCoordinates(id uint, latitude, longitude *float64) error {
	result := s.ormDB.Model(schema.Center{}).Where("id = ?", id).Updates(map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
