// Package catalog holds the built-in molecule table. It is reference data
// for the CLI and config layers; the computation packages never consult it.
package catalog

import (
	"fmt"
	"sort"

	"github.com/lfarias/cesim/internal/electro"
)

var molecules = map[string]electro.Analyte{
	"gallic-acid": {
		ID:                 "gallic-acid",
		Name:               "Gallic Acid",
		Charge:             -1,
		Mass:               170.12,
		HydrodynamicRadius: 3.5e-10,
		LambdaMax:          270,
	},
	"quercetin": {
		ID:                 "quercetin",
		Name:               "Quercetin",
		Charge:             -1,
		Mass:               302.23,
		HydrodynamicRadius: 4.2e-10,
		LambdaMax:          370,
	},
	"caffeine": {
		ID:                 "caffeine",
		Name:               "Caffeine",
		Charge:             0,
		Mass:               194.19,
		HydrodynamicRadius: 3.8e-10,
		LambdaMax:          273,
	},
	"ascorbic-acid": {
		ID:                 "ascorbic-acid",
		Name:               "Ascorbic Acid",
		Charge:             -1,
		Mass:               176.12,
		HydrodynamicRadius: 3.6e-10,
		LambdaMax:          265,
	},
}

// Get looks a molecule up by its ID.
func Get(id string) (electro.Analyte, error) {
	a, ok := molecules[id]
	if !ok {
		return electro.Analyte{}, fmt.Errorf("unknown molecule: %s (available: %v)", id, IDs())
	}
	return a, nil
}

// MustGet is Get for known-good IDs; it panics on a miss.
func MustGet(id string) electro.Analyte {
	a, err := Get(id)
	if err != nil {
		panic(err)
	}
	return a
}

// IDs lists the catalog IDs, sorted.
func IDs() []string {
	ids := make([]string, 0, len(molecules))
	for id := range molecules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the catalog entries sorted by ID.
func All() []electro.Analyte {
	out := make([]electro.Analyte, 0, len(molecules))
	for _, id := range IDs() {
		out = append(out, molecules[id])
	}
	return out
}
