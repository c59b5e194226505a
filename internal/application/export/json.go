package export

import (
	"encoding/json"
	"time"
)

// Envelope is the JSON export document: metadata, the full summary and the
// complete row array.
type Envelope struct {
	ExportedAt time.Time `json:"exported_at"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Format     Format    `json:"format"`
	Options    Options   `json:"options"`
	Summary    Summary   `json:"summary"`
	Data       []Row     `json:"data"`
}

// MarshalJSONExport renders the export envelope as pretty-printed JSON
func MarshalJSONExport(rows []Row, summary Summary, opts Options, exportedAt time.Time) ([]byte, error) {
	env := Envelope{
		ExportedAt: exportedAt,
		From:       opts.From.Format(dateLayout),
		To:         opts.To.Format(dateLayout),
		Format:     opts.Format,
		Options:    opts,
		Summary:    summary,
		Data:       rows,
	}
	return json.MarshalIndent(env, "", "  ")
}
