package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shinyelectron/internal/core/ports"
)

// NodeID is the unique identifier for the export record store Graft node.
const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecordStore, error) {
			return NewStore(), nil
		},
	})
}
