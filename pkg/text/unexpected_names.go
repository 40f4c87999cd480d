package text

import (
	"slices"
	"strings"

	"github.com/ib-77/ropkit/pkg/rop"
)

// UnexpectedNames lists names that were not recognised.
type UnexpectedNames struct {
	Names []string
}

func (u UnexpectedNames) Error() string {
	return "unexpected names: " + strings.Join(u.Names, ", ")
}

// ExpectNames fails with every name not contained in known, in input order.
func ExpectNames(names []string, known ...string) rop.RwE[UnexpectedNames] {
	var unexpected []string
	for _, name := range names {
		if !slices.Contains(known, name) {
			unexpected = append(unexpected, name)
		}
	}

	if len(unexpected) == 0 {
		return rop.NoError[UnexpectedNames]()
	}
	return rop.Error(UnexpectedNames{Names: unexpected})
}
