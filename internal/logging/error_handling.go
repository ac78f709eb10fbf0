package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes closer and logs a failure. Used where nothing can
// act on the error any more, such as a server that failed to drain.
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, component, resource string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close", err,
			slog.String("component", component),
			slog.String("resource", resource))
	}
}

// HandleDeferredError runs closeFn and folds its failure into *errp, so a
// written file whose Close fails is not reported as exported. If *errp already
// holds an error both are kept.
func HandleDeferredError(errp *error, closeFn func() error, logger *slog.Logger, component, resource string) {
	if closeFn == nil {
		return
	}

	err := closeFn()
	if err == nil {
		return
	}

	LogError(logger, "deferred close failed", err,
		slog.String("component", component),
		slog.String("resource", resource))

	closeErr := fmt.Errorf("close %s: %w", resource, err)
	if *errp == nil {
		*errp = closeErr
		return
	}
	*errp = errors.Join(*errp, closeErr)
}
