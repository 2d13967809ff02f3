package store

import (
	"github.com/jfertaj/t1d-centers-app/schema"
)

// Stats aggregates the dashboard counters in one pass per counter.
func (s *CentersStore) Stats() (*schema.CenterStats, error) {
	var stats schema.CenterStats

	if err := s.ormDB.Model(schema.Center{}).Count(&stats.TotalCenters).Error; err != nil {
		return nil, err
	}

	row := s.ormDB.Raw("SELECT COUNT(DISTINCT country) FROM " + schema.CentersTable).Row()
	if err := row.Scan(&stats.CountriesCount); err != nil {
		return nil, err
	}

	if err := s.ormDB.Model(schema.Center{}).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Count(&stats.CentersWithCoordinates).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
