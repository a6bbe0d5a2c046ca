package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "attendance"

const (
	NameCollectionOperations = "collection_operations_total"
	LabelCollection          = "collection"
	LabelOperation           = "operation"
	LabelOutcome             = "outcome"
)

// Outcomes recorded for collection operations.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeDuplicate  = "duplicate"
	OutcomeError      = "error"
)

var CollectionOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCollectionOperations,
		Help:      "Resource collection operations by outcome",
		Namespace: Namespace,
	},
	[]string{LabelCollection, LabelOperation, LabelOutcome},
)
