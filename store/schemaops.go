package store

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jfertaj/t1d-centers-app/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "store")
}

// postgres caps identifiers at 63 bytes
const maxIdentifierLength = 63

var (
	nonAlnumRun       = regexp.MustCompile(`[^a-z0-9]+`)
	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	funcCallPattern   = regexp.MustCompile(`^[A-Z_]+\(\)$`)
	currentKeyword    = regexp.MustCompile(`^CURRENT(_DATE|_TIMESTAMP|_TIME)?$`)
)

// columnTypes is the closed set of types the add-column endpoint accepts,
// keyed by their normalized spelling.
var columnTypes = map[string]string{
	"TEXT":             "TEXT",
	"INTEGER":          "INTEGER",
	"DOUBLE PRECISION": "DOUBLE PRECISION",
	"DOUBLE":           "DOUBLE PRECISION",
	"BOOLEAN":          "BOOLEAN",
	"DATE":             "DATE",
	"TIMESTAMP":        "TIMESTAMP",
}

// standardColumns is the fixed set ensured by the add-schema operation:
// eligibility age bounds, the monitoring flag and the coordinate pair.
var standardColumns = []schema.ColumnSpec{
	{Name: "age_from", Type: "INTEGER", Nullable: true},
	{Name: "age_to", Type: "INTEGER", Nullable: true},
	{Name: "monitoring", Type: "BOOLEAN", Nullable: true},
	{Name: "latitude", Type: "DOUBLE PRECISION", Nullable: true},
	{Name: "longitude", Type: "DOUBLE PRECISION", Nullable: true},
}

const createCentersTableDDL = `
CREATE TABLE clinical_centers (
	id SERIAL PRIMARY KEY,
	name TEXT,
	address TEXT,
	city TEXT,
	country TEXT,
	zip_code TEXT,
	type_of_ed TEXT,
	detect_site TEXT,
	contact_name_1 TEXT, email_1 TEXT, phone_1 TEXT,
	contact_name_2 TEXT, email_2 TEXT, phone_2 TEXT,
	contact_name_3 TEXT, email_3 TEXT, phone_3 TEXT,
	contact_name_4 TEXT, email_4 TEXT, phone_4 TEXT,
	contact_name_5 TEXT, email_5 TEXT, phone_5 TEXT,
	contact_name_6 TEXT, email_6 TEXT, phone_6 TEXT,
	age_from INTEGER,
	age_to INTEGER,
	monitoring BOOLEAN,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	created_at TIMESTAMP DEFAULT NOW()
)`

// NormalizeColumnName turns free-form admin input into a safe postgres
// identifier: diacritics folded out, lowercased, non-alphanumeric runs
// collapsed to underscores, forced to start with a letter and capped at 63
// characters. Normalizing an already-normalized name returns it unchanged.
func NormalizeColumnName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	s = nonAlnumRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return ""
	}
	if s[0] < 'a' || s[0] > 'z' {
		s = "c_" + s
	}
	if len(s) > maxIdentifierLength {
		s = strings.TrimRight(s[:maxIdentifierLength], "_")
	}
	return s
}

// ValidateTableName rejects anything that is not already a safe
// identifier. Table names are never normalized silently.
func ValidateTableName(table string) error {
	if len(table) > maxIdentifierLength || !identifierPattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	return nil
}

// ComposeDefaultClause renders a default-value expression for the given
// column type. Booleans accept only true/false, numeric types only finite
// numbers, and a small whitelist of function-call forms passes through
// verbatim. Everything else becomes an escaped string literal.
func ComposeDefaultClause(columnType, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}

	switch columnType {
	case "BOOLEAN":
		switch strings.ToLower(value) {
		case "true":
			return "TRUE", nil
		case "false":
			return "FALSE", nil
		}
		return "", fmt.Errorf("invalid boolean default %q", raw)

	case "INTEGER", "DOUBLE PRECISION":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return "", fmt.Errorf("invalid numeric default %q", raw)
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}

	upper := strings.ToUpper(value)
	if funcCallPattern.MatchString(upper) || currentKeyword.MatchString(upper) {
		return upper, nil
	}

	return "'" + strings.ReplaceAll(value, "'", "''") + "'", nil
}

// ValidateColumnSpec normalizes a requested column and returns it together
// with its rendered default clause. Any malformed piece is rejected here,
// before a statement is generated from it.
func ValidateColumnSpec(spec schema.ColumnSpec) (schema.ColumnSpec, string, error) {
	name := NormalizeColumnName(spec.Name)
	if name == "" {
		return spec, "", fmt.Errorf("invalid column name %q", spec.Name)
	}

	typeKey := strings.ToUpper(strings.Join(strings.Fields(spec.Type), " "))
	columnType, ok := columnTypes[typeKey]
	if !ok {
		return spec, "", fmt.Errorf("unknown column type %q", spec.Type)
	}

	var clause string
	if spec.Default != nil {
		var err error
		clause, err = ComposeDefaultClause(columnType, *spec.Default)
		if err != nil {
			return spec, "", err
		}
	}

	normalized := schema.ColumnSpec{
		Name:     name,
		Type:     columnType,
		Nullable: spec.Nullable,
		Default:  spec.Default,
	}
	return normalized, clause, nil
}

// buildAddColumnStatement assembles the guarded ALTER TABLE statement from
// pieces that already passed validation. This is the only place a schema
// statement is put together.
func buildAddColumnStatement(table string, spec schema.ColumnSpec, defaultClause string) string {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", table, spec.Name, spec.Type)
	if defaultClause != "" {
		stmt += " DEFAULT " + defaultClause
	}
	if !spec.Nullable {
		stmt += " NOT NULL"
	}
	return stmt
}

// AddColumns validates every requested column and applies the resulting
// statements. ADD COLUMN IF NOT EXISTS makes re-adding an existing column
// a no-op rather than an error.
func (s *CentersStore) AddColumns(table string, specs []schema.ColumnSpec) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}

	statements := make([]string, 0, len(specs))
	for _, spec := range specs {
		normalized, clause, err := ValidateColumnSpec(spec)
		if err != nil {
			return err
		}
		statements = append(statements, buildAddColumnStatement(table, normalized, clause))
	}

	for _, stmt := range statements {
		if err := s.ormDB.Exec(stmt).Error; err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				log.WithFields(logrus.Fields{
					"code":      pqErr.Code.Name(),
					"statement": stmt,
				}).Error("add column failed")
			}
			return err
		}
	}
	return nil
}

// EnsureStandardColumns idempotently adds the fixed standard column set to
// the centers table.
func (s *CentersStore) EnsureStandardColumns() error {
	return s.AddColumns(schema.CentersTable, standardColumns)
}

// RecreateCenters drops and recreates the centers table with its baseline
// definition. Destructive; only reachable through the token-gated admin
// endpoint.
func (s *CentersStore) RecreateCenters() error {
	if err := s.ormDB.Exec("DROP TABLE IF EXISTS " + schema.CentersTable).Error; err != nil {
		return err
	}
	return s.ormDB.Exec(createCentersTableDDL).Error
}

// ListColumns reads the column metadata of a table from
// information_schema.
func (s *CentersStore) ListColumns(table string) ([]schema.ColumnInfo, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}

	var columns []schema.ColumnInfo
	if err := s.ormDB.Raw(`
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ?
		ORDER BY ordinal_position`, table).Scan(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *CentersStore) tableColumnSet(table string) (map[string]struct{}, error) {
	columns, err := s.ListColumns(table)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c.ColumnName] = struct{}{}
	}
	return set, nil
}
