package migration

import (
	"context"
	"fmt"
	"time"

	"arangodoc/internal/collection"
	"arangodoc/internal/connection"
	"arangodoc/internal/logging"
	"arangodoc/internal/protocol"
)

// EnsureCollections creates the document collections in names that do not exist yet.
// Existing collections are left as they are.
func EnsureCollections(ctx context.Context, t connection.Transport, names []string, logger logging.Logger) error {
	start := time.Now()
	logger.Infow("collection check",
		"component", "database",
		"event", "db_migration_check",
		"status", "starting",
		"collections", names,
	)

	created := 0
	for _, name := range names {
		stepStart := time.Now()

		_, err := connection.Execute(ctx, t, collection.NewGetCollection(name))
		if err == nil {
			continue
		}
		if protocol.CodeOf(err) != protocol.ArangoCollectionNotFound {
			logger.Errorw("collection check failed",
				"component", "database",
				"event", "db_migration_failed",
				"status", "error",
				"collection", name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return fmt.Errorf("check collection %s: %w", name, err)
		}

		_, err = connection.Execute(ctx, t, collection.CreateDocumentCollection(name))
		// Another instance may have created it in the meantime.
		if err != nil && protocol.CodeOf(err) != protocol.ArangoDuplicateName {
			logger.Errorw("collection creation failed",
				"component", "database",
				"event", "db_migration_failed",
				"status", "error",
				"collection", name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("create collection %s: %w", name, err)
		}

		created++
		logger.Infow("collection created",
			"component", "database",
			"event", "db_migration_step",
			"status", "success",
			"collection", name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Infow("collection check done",
		"component", "database",
		"event", "db_migration_success",
		"status", "success",
		"created", created,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
