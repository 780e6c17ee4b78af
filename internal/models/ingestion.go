package models

// IngestStatus is the result tag of one ticker in a batch.
type IngestStatus string

const (
	IngestSucceeded IngestStatus = "success"
	IngestFailed    IngestStatus = "failed"
)

// IngestOutcome records what happened to one ticker during batch ingestion.
type IngestOutcome struct {
	Ticker       string       `json:"ticker"`
	Status       IngestStatus `json:"status"`
	BarsUpserted int          `json:"bars_upserted"`
	Stock        *Stock       `json:"stock,omitempty"`
	Error        string       `json:"error,omitempty"`
	// Err keeps the typed cause for in-process callers.
	Err error `json:"-"`
}

func (o IngestOutcome) Succeeded() bool { return o.Status == IngestSucceeded }

// IngestBatchRequest is the payload of a synchronous batch ingestion.
type IngestBatchRequest struct {
	Tickers []string `json:"tickers"`
}

// IngestBatchResponse summarizes a batch. The batch itself never fails as a
// whole; per-ticker failures live in Outcomes.
type IngestBatchResponse struct {
	Status    string          `json:"status"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Outcomes  []IngestOutcome `json:"outcomes"`
}

// SummarizeOutcomes counts successes and failures.
func SummarizeOutcomes(outcomes []IngestOutcome) *IngestBatchResponse {
	resp := &IngestBatchResponse{Status: "completed", Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Succeeded() {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	if resp.Failed > 0 {
		resp.Status = "completed_with_errors"
	}
	return resp
}
