package serviceImp

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"seedlib/entities"
	invRepo "seedlib/pkg/inventory/repository"
	"seedlib/pkg/importer/service"
	seedRepo "seedlib/pkg/seed/repository"
)

type importService struct {
	seeds     seedRepo.SeedRepository
	inventory invRepo.InventoryRepository
}

func New(seeds seedRepo.SeedRepository, inventory invRepo.InventoryRepository) service.ImportService {
	return &importService{seeds: seeds, inventory: inventory}
}

func readSheet(path string) (header []string, rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return []string{}, nil, nil
	}
	header = make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, all[1:], nil
}

func (s *importService) ReadHeader(path string) ([]string, error) {
	header, _, err := readSheet(path)
	return header, err
}

func (s *importService) ImportSeedsFromExcel(path string, mapping map[string]string) service.ImportResult {
	header, rows, err := readSheet(path)
	if err != nil {
		log.Printf("[import] failed to read %s: %v", path, err)
		return service.ImportResult{Success: false, Error: err.Error(), Errors: []string{}}
	}
	log.Printf("[import] reading %s, columns: %v", path, header)

	columnIndex := map[string]int{}
	for i, h := range header {
		columnIndex[h] = i
	}

	mappingErrors := validateMapping(mapping, columnIndex)
	if len(mappingErrors) > 0 {
		return service.ImportResult{
			Success:       false,
			Error:         "Mapping validation failed",
			MappingErrors: mappingErrors,
			TotalRows:     len(rows),
			Errors:        []string{},
		}
	}

	result := service.ImportResult{
		Success:   true,
		TotalRows: len(rows),
		Errors:    []string{},
	}

	for i, row := range rows {
		cell := func(field string) string {
			column := mapping[field]
			if column == "" {
				return ""
			}
			idx, ok := columnIndex[column]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		seed, err := buildSeed(cell)
		if err == nil {
			var id uint
			id, err = s.seeds.Create(seed)
			if err == nil {
				_, err = s.inventory.GetOrCreate(id)
			}
			if err == nil {
				result.ImportedCount++
				result.SeedIDs = append(result.SeedIDs, id)
				continue
			}
		}
		// spreadsheet row number: +1 for the header, +1 for 1-based rows
		msg := fmt.Sprintf("Row %d: %v", i+2, err)
		result.Errors = append(result.Errors, msg)
		log.Printf("[import] %s", msg)
	}

	return result
}

func validateMapping(mapping map[string]string, columnIndex map[string]int) []string {
	var errs []string

	if len(mapping) == 0 {
		errs = append(errs, "No column mappings were provided.")
	}

	for _, required := range service.RequiredFields {
		if mapping[required] == "" {
			errs = append(errs, fmt.Sprintf("Mapping for required field '%s' is missing.", required))
		}
	}

	counts := map[string]int{}
	for _, column := range mapping {
		if column != "" {
			counts[column]++
		}
	}
	for _, field := range service.SupportedFields {
		column := mapping[field]
		if column != "" && counts[column] > 1 {
			errs = append(errs, fmt.Sprintf("Column '%s' is mapped to multiple fields. Please choose unique columns.", column))
			counts[column] = 0 // one message per offending column
		}
	}

	for _, field := range service.SupportedFields {
		column := mapping[field]
		if column == "" {
			continue
		}
		if _, ok := columnIndex[column]; !ok {
			errs = append(errs, fmt.Sprintf("Column '%s' was not found for '%s'.", column, field))
		}
	}

	return errs
}

func buildSeed(cell func(string) string) (*entities.Seed, error) {
	seedType := cell("Type")
	name := cell("Name")
	if seedType == "" {
		return nil, fmt.Errorf("Type is required")
	}
	if name == "" {
		return nil, fmt.Errorf("Name is required")
	}

	packets, err := parsePackets(cell("packets_made"))
	if err != nil {
		return nil, err
	}

	seed := &entities.Seed{
		Type:        seedType,
		Name:        name,
		PacketsMade: packets,
		SeedSource:  cell("seed_source"),
		AmountText:  cell("amount_text"),
	}

	dates := []struct {
		field string
		dst   *entities.Date
	}{
		{"date_ordered", &seed.DateOrdered},
		{"date_finished", &seed.DateFinished},
		{"date_cataloged", &seed.DateCataloged},
		{"date_ran_out", &seed.DateRanOut},
	}
	for _, d := range dates {
		parsed, err := entities.ParseDate(cell(d.field))
		if err != nil {
			return nil, fmt.Errorf("%s: %v", d.field, err)
		}
		*d.dst = parsed
	}

	return seed, nil
}

// parsePackets accepts blank as zero and integral floats ("3.0"), which is
// how spreadsheet numerics often come out.
func parsePackets(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("packets_made: invalid value %q", raw)
		}
		n = int(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("packets_made: must be non-negative, got %d", n)
	}
	return n, nil
}
