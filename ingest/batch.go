package ingest

import "github.com/smallsizeleague/sslmcp"

// DefaultTokenBudget is the maximum cumulative token count permitted in a
// single embedding/upsert request. It acts as backpressure against the
// embedding provider's request-size limits.
const DefaultTokenBudget = 300000

// Batch is an ordered, contiguous sub-sequence of chunks whose summed
// token count respects the budget. Batches are transient: constructed,
// committed, discarded.
type Batch struct {
	Chunks []*sslmcp.Chunk
	Tokens int
}

// PlanBatches partitions chunks into contiguous batches by greedy packing:
// chunks accumulate until adding the next one would exceed the budget,
// which closes the batch at the boundary just before it. A chunk whose own
// token count exceeds the budget forms a singleton batch rather than being
// dropped. Concatenating the batches in order reconstructs the input
// exactly.
func PlanBatches(chunks []*sslmcp.Chunk, budget int) []Batch {
	if len(chunks) == 0 {
		return nil
	}
	if budget <= 0 {
		budget = DefaultTokenBudget
	}

	var batches []Batch
	var current Batch

	for _, chunk := range chunks {
		if len(current.Chunks) > 0 && current.Tokens+chunk.TokenCount > budget {
			batches = append(batches, current)
			current = Batch{}
		}
		current.Chunks = append(current.Chunks, chunk)
		current.Tokens += chunk.TokenCount
	}
	batches = append(batches, current)

	return batches
}
