package controllerImp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"seedlib/config"
	"seedlib/pkg/importer/service"
	taskSvc "seedlib/pkg/task/service"
)

const copyChunkSize = 32 * 1024

type ImportCtrl struct {
	cfg     config.AppConfig
	svc     service.ImportService
	taskSvc taskSvc.TaskService
}

func New(cfg config.AppConfig, svc service.ImportService, tasks taskSvc.TaskService) *ImportCtrl {
	return &ImportCtrl{cfg: cfg, svc: svc, taskSvc: tasks}
}

// Upload stores the spreadsheet under the data dir and returns its columns
// so the client can pick a mapping. The copy is chunked and aborts once the
// cumulative size passes the configured cap.
func (h *ImportCtrl) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !contains(h.cfg.AllowedImportExts, ext) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Please upload an Excel file (%s)", strings.Join(h.cfg.AllowedImportExts, " or ")),
		})
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && len(h.cfg.AllowedImportTypes) > 0 {
		if !contains(h.cfg.AllowedImportTypes, ct) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported file type"})
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not read upload"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.cfg.DataDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store upload"})
	}
	name := fmt.Sprintf("import_%d_%s", time.Now().Unix(), filepath.Base(fileHeader.Filename))
	path := filepath.Join(h.cfg.DataDir, name)

	if err := copyCapped(path, src, h.cfg.MaxImportBytes); err != nil {
		os.Remove(path)
		if err == errTooLarge {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
				"error": fmt.Sprintf("file exceeds the %d byte upload limit", h.cfg.MaxImportBytes),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store upload"})
	}

	columns, err := h.svc.ReadHeader(path)
	if err != nil {
		os.Remove(path)
		log.Printf("[import] upload rejected: %v", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"file_path": path,
		"columns":   columns,
	})
}

var errTooLarge = fmt.Errorf("upload too large")

func copyCapped(path string, src io.Reader, maxBytes int64) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	var written int64
	buf := make([]byte, copyChunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > maxBytes {
				return errTooLarge
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

type confirmBody struct {
	FilePath            string `json:"file_path" form:"file_path"`
	TypeColumn          string `json:"type_column" form:"type_column"`
	NameColumn          string `json:"name_column" form:"name_column"`
	PacketsMadeColumn   string `json:"packets_made_column" form:"packets_made_column"`
	SeedSourceColumn    string `json:"seed_source_column" form:"seed_source_column"`
	DateOrderedColumn   string `json:"date_ordered_column" form:"date_ordered_column"`
	DateFinishedColumn  string `json:"date_finished_column" form:"date_finished_column"`
	DateCatalogedColumn string `json:"date_cataloged_column" form:"date_cataloged_column"`
	DateRanOutColumn    string `json:"date_ran_out_column" form:"date_ran_out_column"`
	AmountTextColumn    string `json:"amount_text_column" form:"amount_text_column"`
}

func (b confirmBody) mapping() map[string]string {
	return map[string]string{
		"Type":           b.TypeColumn,
		"Name":           b.NameColumn,
		"packets_made":   b.PacketsMadeColumn,
		"seed_source":    b.SeedSourceColumn,
		"date_ordered":   b.DateOrderedColumn,
		"date_finished":  b.DateFinishedColumn,
		"date_cataloged": b.DateCatalogedColumn,
		"date_ran_out":   b.DateRanOutColumn,
		"amount_text":    b.AmountTextColumn,
	}
}

// Confirm runs the import with the selected mapping. On success it triggers
// task generation for each imported seed and removes the temp file; on
// mapping failure it keeps the file so the client can correct the mapping.
func (h *ImportCtrl) Confirm(c echo.Context) error {
	var body confirmBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	if body.FilePath == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file_path is required"})
	}
	// only touch files this controller wrote
	if filepath.Dir(filepath.Clean(body.FilePath)) != filepath.Clean(h.cfg.DataDir) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid file_path"})
	}
	if _, err := os.Stat(body.FilePath); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Uploaded file could not be found. Please upload again.",
		})
	}

	result := h.svc.ImportSeedsFromExcel(body.FilePath, body.mapping())

	if result.Success {
		for _, seedID := range result.SeedIDs {
			if _, err := h.taskSvc.AutoGenerateForSeed(seedID); err != nil {
				log.Printf("[import] task generation for seed %d failed: %v", seedID, err)
			}
		}
	}
	if len(result.MappingErrors) == 0 {
		if err := os.Remove(body.FilePath); err != nil {
			log.Printf("[import] temporary file %s could not be removed: %v", body.FilePath, err)
		}
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	return c.JSON(status, result)
}
