// internal/registry/seed.go
package registry

import (
	_ "embed"

	"activity-signup/internal/common/errors"
	"activity-signup/internal/common/logger"
	"activity-signup/pkg/catalog"
)

// seedJSON is the fixed activity catalog baked into the binary. It is not
// externally configurable; activities exist for the life of the process.
//
//go:embed seed/activities.json
var seedJSON []byte

// FromSeed builds a registry from the embedded catalog. The catalog is
// schema-validated on every start so a bad edit fails loudly.
func FromSeed(log logger.Logger) (*Registry, error) {
	cat, err := catalog.Parse(seedJSON)
	if err != nil {
		return nil, errors.NewSeedInvalidError(err.Error())
	}
	return New(cat, log), nil
}
