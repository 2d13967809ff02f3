package schema

import (
	"time"
)

const ProgramRulesTable = "program_rules"

// ProgramRule routes a (country, postal code, age) query to a regional
// participation program. PostalPattern holds a semicolon-separated list of
// clauses; each clause is either an inclusive numeric range ("1000-4050")
// or a wildcard-digit pattern ("40***"). A null pattern matches any postal
// code of the rule's country.
type ProgramRule struct {
	ID            uint    `json:"id" gorm:"primary_key"`
	Country       string  `json:"country" gorm:"not null"`
	PostalPattern *string `json:"postal_pattern"`
	AgeFrom       *int    `json:"age_from"`
	AgeTo         *int    `json:"age_to"`
	TypeOfED      *string `json:"type_of_ed"`

	ProgramID   *string `json:"program_id"`
	ProgramName string  `json:"program_name" gorm:"not null"`
	ProgramURL  *string `json:"program_url"`
	Message     *string `json:"message"`

	// Ascending rank: 1 beats 100. Ties fall back to insertion order.
	Priority int  `json:"priority" gorm:"default:100"`
	Active   bool `json:"active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProgramRule) TableName() string {
	return ProgramRulesTable
}
