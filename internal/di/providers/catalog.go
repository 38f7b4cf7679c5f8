package providers

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"

	"github.com/listenupapp/bookcatalog/internal/catalog"
	"github.com/listenupapp/bookcatalog/internal/config"
	"github.com/listenupapp/bookcatalog/internal/domain"
	"github.com/listenupapp/bookcatalog/internal/errors"
	"github.com/listenupapp/bookcatalog/internal/logger"
	"github.com/listenupapp/bookcatalog/internal/seed"
	"github.com/listenupapp/bookcatalog/internal/validation"
)

// ProvideCatalog builds the catalog from the built-in starter records and
// the configured seed file, in that order.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)

	var starter []domain.Record
	if cfg.Catalog.DefaultSeed {
		starter = seed.Books()
	}

	c, err := catalog.New(catalog.Options{Logger: log.Logger, Validator: v}, starter...)
	if err != nil {
		return nil, err
	}

	if path := cfg.Catalog.SeedPath; path != "" {
		data, err := os.ReadFile(path) //#nosec G304 -- seed path comes from the operator
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInternal, "read seed file %s", path)
		}
		if err := c.ImportJSON(data); err != nil {
			return nil, fmt.Errorf("load seed file %s: %w", path, err)
		}
	}

	log.WithField("catalog_id", c.ID()).Debug("Catalog ready",
		"records", c.Len(),
		"genres", len(c.GenreCounts()),
	)

	return c, nil
}
