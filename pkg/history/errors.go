package history

import perrors "github.com/matzehuels/plannerkit/pkg/errors"

func notFound(id string) error {
	return perrors.New(perrors.ErrCodeNotFound, "history record %q not found", id)
}
