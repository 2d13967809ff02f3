package store

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/jfertaj/t1d-centers-app/schema"
)

var (
	ErrNoUpdatableFields = errors.New("no valid fields to update")
)

// CentersData is the main datastore of the center registry.
type CentersData interface {
	Ping() error
	DBInfo() (*schema.DBInfo, error)

	// Centers
	ListCenters() ([]schema.Center, error)
	CreateCenter(*schema.Center) error
	UpdateCenter(id uint, fields map[string]interface{}) (*schema.Center, error)
	DeleteCenter(id uint) error
	ListCentersMissingCoordinates() ([]schema.Center, error)
	UpdateCenterCoordinates(id uint, latitude, longitude *float64) error

	// Program rules
	ListProgramRules(country string, active *bool) ([]schema.ProgramRule, error)
	CreateProgramRule(*schema.ProgramRule) error
	UpdateProgramRule(id uint, fields map[string]interface{}) (*schema.ProgramRule, error)
	DeleteProgramRule(id uint) error

	// Dynamic schema
	ListColumns(table string) ([]schema.ColumnInfo, error)
	AddColumns(table string, specs []schema.ColumnSpec) error
	EnsureStandardColumns() error
	RecreateCenters() error

	// Aggregates
	Stats() (*schema.CenterStats, error)
}

// CentersStore is an implementation of CentersData over postgres.
type CentersStore struct {
	ormDB *gorm.DB
}

func NewCentersStore(ormDB *gorm.DB) *CentersStore {
	return &CentersStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CentersStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// DBInfo reports which database and user the pool is connected as.
func (s *CentersStore) DBInfo() (*schema.DBInfo, error) {
	var info schema.DBInfo
	row := s.ormDB.Raw("SELECT current_database(), current_user, version()").Row()
	if err := row.Scan(&info.Database, &info.User, &info.Version); err != nil {
		return nil, err
	}
	return &info, nil
}
