package models

import (
	"time"

	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
)

// DatasetMeta describes one ingested archive as exposed by the API.
type DatasetMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Trips      ingest.SourceReport  `json:"trips"`
	Sessions   ingest.SourceReport  `json:"sessions"`
	Dispatches *ingest.SourceReport `json:"dispatches,omitempty"`
}
