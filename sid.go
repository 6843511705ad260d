package sbml

import (
	"fmt"
	"regexp"
)

var (
	sidPattern     = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	sboTermPattern = regexp.MustCompile(`^SBO:\d{7}$`)
	// XML 1.0 permits a much larger repertoire of name characters; ids in
	// practice stick to this ASCII subset.
	metaIdPattern = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9._:\-]*$`)
)

// SId is an SBML identifier: a letter or underscore followed by letters,
// digits and underscores. The zero value is not a valid SId; construct
// through NewSId so that every SId in circulation satisfies the grammar.
type SId string

func NewSId(value string) (SId, error) {
	if !sidPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSId, value)
	}
	return SId(value), nil
}

// MustSId is NewSId for identifiers known valid at compile time; it panics
// on a grammar violation.
func MustSId(value string) SId {
	id, err := NewSId(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id SId) String() string {
	return string(id)
}

// MetaId is an XML 1.0 ID used for the metaid attribute.
type MetaId string

func NewMetaId(value string) (MetaId, error) {
	if !metaIdPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMetaId, value)
	}
	return MetaId(value), nil
}

func (m MetaId) String() string {
	return string(m)
}

// SboTerm is a Systems Biology Ontology term reference of the form
// SBO:0000123.
type SboTerm string

func NewSboTerm(value string) (SboTerm, error) {
	if !sboTermPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSboTerm, value)
	}
	return SboTerm(value), nil
}

func (t SboTerm) String() string {
	return string(t)
}
