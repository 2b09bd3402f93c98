package model

// ImportRowError describes one invalid row in a CSV question import.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportReport summarises a CSV import run. DryRun reports validation only;
// otherwise Imported is the number of questions actually created (as drafts).
type ImportReport struct {
	DryRun    bool             `json:"dry_run"`
	TotalRows int              `json:"total_rows"`
	ValidRows int              `json:"valid_rows"`
	Imported  int              `json:"imported"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}
