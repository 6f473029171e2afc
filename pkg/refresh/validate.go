package refresh

import (
	"fmt"

	apperrors "github.com/fxatlas/countryfx/pkg/app/errors"
	"github.com/fxatlas/countryfx/pkg/sources"
)

// validateCatalog rejects the whole batch when any record is missing a
// required field. The returned error carries a field-to-reason map for
// the first offending record.
func validateCatalog(records []sources.CountryRecord) error {
	for i, rec := range records {
		details := map[string]string{}
		if rec.Name == "" {
			details["name"] = "is required"
		}
		if !rec.Population.Present {
			details["population"] = "is required"
		}
		if len(details) == 0 {
			continue
		}

		subject := rec.Name
		if subject == "" {
			subject = fmt.Sprintf("record %d", i)
		}
		return apperrors.ValidationError(
			fmt.Errorf("invalid catalog entry %s", subject),
			"Validation failed",
			details,
		)
	}
	return nil
}
