package schema

import (
	"time"
)

// CentersTable is the registry table managed by the admin UI.
const CentersTable = "clinical_centers"

type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Center is a clinical research site record. All descriptive fields are
// nullable in the database; pointers keep the distinction between an empty
// string and an absent value across partial updates.
type Center struct {
	ID       uint    `json:"id" gorm:"primary_key"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	ZipCode  *string `json:"zip_code"`
	TypeOfED *string `json:"type_of_ed"`

	DetectSite *string `json:"detect_site"`

	ContactName1 *string `json:"contact_name_1"`
	Email1       *string `json:"email_1"`
	Phone1       *string `json:"phone_1"`
	ContactName2 *string `json:"contact_name_2"`
	Email2       *string `json:"email_2"`
	Phone2       *string `json:"phone_2"`
	ContactName3 *string `json:"contact_name_3"`
	Email3       *string `json:"email_3"`
	Phone3       *string `json:"phone_3"`
	ContactName4 *string `json:"contact_name_4"`
	Email4       *string `json:"email_4"`
	Phone4       *string `json:"phone_4"`
	ContactName5 *string `json:"contact_name_5"`
	Email5       *string `json:"email_5"`
	Phone5       *string `json:"phone_5"`
	ContactName6 *string `json:"contact_name_6"`
	Email6       *string `json:"email_6"`
	Phone6       *string `json:"phone_6"`

	AgeFrom    *int  `json:"age_from"`
	AgeTo      *int  `json:"age_to"`
	Monitoring *bool `json:"monitoring"`

	// Populated by the geocoder. A null pair means the address has not been
	// geocoded yet or the last attempt was rejected as ambiguous.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
}

func (Center) TableName() string {
	return CentersTable
}

// CenterAddressColumns are the columns whose change invalidates the stored
// coordinates and triggers a re-geocode on update.
var CenterAddressColumns = []string{"address", "city", "zip_code", "country"}

type CenterStats struct {
	TotalCenters           int `json:"totalCenters"`
	CountriesCount         int `json:"countriesCount"`
	CentersWithCoordinates int `json:"centersWithCoordinates"`
}

type DBInfo struct {
	Database string `json:"current_database"`
	User     string `json:"current_user"`
	Version  string `json:"version"`
}
