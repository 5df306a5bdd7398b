package service

// Target fields a spreadsheet column can be mapped onto.
var (
	RequiredFields  = []string{"Type", "Name"}
	SupportedFields = []string{
		"Type",
		"Name",
		"packets_made",
		"seed_source",
		"date_ordered",
		"date_finished",
		"date_cataloged",
		"date_ran_out",
		"amount_text",
	}
)

// ImportResult summarizes one import batch. MappingErrors is populated only
// when validation aborted before any row was touched; Errors collects
// isolated row failures. SeedIDs lets the caller run task generation per
// imported seed.
type ImportResult struct {
	Success       bool     `json:"success"`
	Error         string   `json:"error,omitempty"`
	MappingErrors []string `json:"mapping_errors,omitempty"`
	ImportedCount int      `json:"imported_count"`
	TotalRows     int      `json:"total_rows"`
	Errors        []string `json:"errors"`
	SeedIDs       []uint   `json:"-"`
}

type ImportService interface {
	// ReadHeader returns the trimmed header row of the first sheet.
	ReadHeader(path string) ([]string, error)
	// ImportSeedsFromExcel validates the mapping, then creates one seed
	// (plus an empty inventory record) per valid data row.
	ImportSeedsFromExcel(path string, mapping map[string]string) ImportResult
}
