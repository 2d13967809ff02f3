package program

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jfertaj/t1d-centers-app/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "program")
}

// Query is one lookup against the rule set. Age is optional; a nil age
// passes every age predicate.
type Query struct {
	Country    string
	PostalCode string
	Age        *int
}

// Match is the winning rule projected to what callers need to redirect a
// user to a program.
type Match struct {
	RuleID      uint   `json:"rule_id"`
	ProgramID   string `json:"program_id"`
	ProgramName string `json:"program_name"`
	ProgramURL  string `json:"program_url"`
	Message     string `json:"message"`
}

// Select evaluates every rule against the query and returns the winner.
// Country comparison is exact and case-sensitive. Inactive rules never
// match. Among matching rules the lowest priority value wins; on equal
// priority the lowest id (insertion order) wins. The second return value
// is false when no rule matches, which is not an error.
func Select(rules []schema.ProgramRule, q Query) (*Match, bool) {
	var winner *schema.ProgramRule
	for i := range rules {
		r := &rules[i]
		if !matches(r, q) {
			continue
		}
		if winner == nil ||
			r.Priority < winner.Priority ||
			(r.Priority == winner.Priority && r.ID < winner.ID) {
			winner = r
		}
	}
	if winner == nil {
		return nil, false
	}

	return &Match{
		RuleID:      winner.ID,
		ProgramID:   derefString(winner.ProgramID),
		ProgramName: winner.ProgramName,
		ProgramURL:  derefString(winner.ProgramURL),
		Message:     derefString(winner.Message),
	}, true
}

func matches(r *schema.ProgramRule, q Query) bool {
	if !r.Active {
		return false
	}
	if r.Country != q.Country {
		return false
	}
	if !ageWithin(r, q.Age) {
		return false
	}

	pattern := derefString(r.PostalPattern)
	if strings.TrimSpace(pattern) == "" {
		return true
	}
	return MatchPostal(pattern, q.PostalCode)
}

func ageWithin(r *schema.ProgramRule, age *int) bool {
	if age == nil {
		return true
	}
	if r.AgeFrom != nil && *age < *r.AgeFrom {
		return false
	}
	if r.AgeTo != nil && *age > *r.AgeTo {
		return false
	}
	return true
}

// MatchPostal reports whether a postal code satisfies a pattern. The
// pattern is a semicolon-separated disjunction of clauses; a clause is an
// inclusive numeric range ("1000-4050"), a wildcard-digit pattern where
// each "*" stands for any single character ("40***"), or a lone "*" which
// matches any code. An unparseable range clause is skipped with a warning
// instead of failing the whole lookup.
func MatchPostal(pattern, code string) bool {
	for _, clause := range strings.Split(pattern, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if matchClause(clause, code) {
			return true
		}
	}
	return false
}

func matchClause(clause, code string) bool {
	if clause == "*" {
		return true
	}

	if lo, hi, ok := splitRange(clause); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(code), 10, 64)
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}

	return matchWildcard(clause, code)
}

// matchWildcard requires equal length; every non-"*" rune of the pattern
// must equal the rune at the same position of the code.
func matchWildcard(pattern, code string) bool {
	p := []rune(pattern)
	c := []rune(code)
	if len(p) != len(c) {
		return false
	}
	for i := range p {
		if p[i] != '*' && p[i] != c[i] {
			return false
		}
	}
	return true
}

// splitRange parses "lo-hi" clauses made of digits only.
func splitRange(clause string) (int64, int64, bool) {
	parts := strings.SplitN(clause, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	hi, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if lo > hi {
		log.WithField("clause", clause).Warn("range clause with inverted bounds")
		return 0, 0, false
	}
	return lo, hi, true
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
