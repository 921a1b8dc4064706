package shared

import (
	"skipass-api/internal/infra"
	"skipass-api/internal/pkg/errs"
)

// StoreError maps a repository failure onto the shared error vocabulary.
// notFound is returned for missing rows; everything that is not a caller
// mistake becomes ErrCollaboratorUnavailable.
func StoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey),
		infra.IsKind(err, infra.KindForeignKeyViolated):
		return err
	case errs.IsAny(err,
		errs.ErrUnauthenticated, errs.ErrPassNotFound, errs.ErrAlreadyActivated,
		errs.ErrPassNotActive, errs.ErrResortNotFound, errs.ErrEmailTaken,
		errs.ErrInvalidInput, errs.ErrCollaboratorUnavailable):
		return err
	default:
		return errs.Mark(err, errs.ErrCollaboratorUnavailable)
	}
}
