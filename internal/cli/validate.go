package cli

import (
	"errors"

	apperrors "github.com/Karthik0484/Progress-Tracker/internal/errors"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	store, err := ctx.Tracker()
	if err != nil {
		return err
	}

	dataErrs := store.CorruptionErrors()
	catalogErrs := ctx.Catalog.Validate()

	if len(dataErrs) == 0 && len(catalogErrs) == 0 {
		ctx.printf("%s Tracking data and schedule are valid.\n", okMark)
		return nil
	}

	if len(dataErrs) > 0 {
		ctx.printf("%s Tracking data (%d problems):\n", failMark, len(dataErrs))
		for _, e := range dataErrs {
			ctx.printf("  - %s\n", e)
		}
		ctx.println()
		ctx.println("Editing is disabled until the data is fixed. Restore with 'tracker snapshot restore <date>'.")
	}
	if len(catalogErrs) > 0 {
		ctx.printf("%s Schedule (%d problems):\n", failMark, len(catalogErrs))
		for _, e := range catalogErrs {
			ctx.printf("  - %s\n", e)
		}
	}

	return apperrors.WithExitCode(errors.New("validation failed"), apperrors.ExitCorrupted)
}
