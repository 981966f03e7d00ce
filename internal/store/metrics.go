package store

import "ripple/internal/observability"

func observeInsert(entity string) {
	observability.StoreOperations.WithLabelValues(entity, "insert").Inc()
}

func observeDelete(entity string) {
	observability.StoreOperations.WithLabelValues(entity, "delete").Inc()
}
