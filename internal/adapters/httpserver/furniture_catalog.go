package httpserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/maderal/muebleria/internal/domain"
)

const catalogSheet = "Furnitures"

var catalogHeader = []string{
	"name", "description", "category", "dimensions", "materials",
	"color", "style", "price", "imageUrl", "quantity",
}

// GET /furnitures/export — the whole catalog as an XLSX workbook.
func (s *Server) handleFurnitureExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.handleNotImplemented(w, r)
		return
	}
	list, err := s.furnitures.All(r.Context())
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	idx, err := f.NewSheet(catalogSheet)
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range catalogHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(catalogSheet, cell, h)
	}
	for i, item := range list {
		row := i + 2
		values := []any{
			item.Name, item.Description, item.Category, item.Dimensions,
			strings.Join(item.Materials, ","), item.Color, item.Style,
			item.Price, item.ImageURL, item.Quantity,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(catalogSheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="furnitures.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("catalog export")
	}
}

type importReport struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// POST /furnitures/import — upsert catalog rows by name. Rows that fail
// validation are skipped and reported, the rest go through.
func (s *Server) handleFurnitureImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.handleNotImplemented(w, r)
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil || len(data) == 0 {
		writeText(w, http.StatusBadRequest, "empty body")
		return
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid xlsx")
		return
	}
	defer f.Close()

	sheet := catalogSheet
	if !hasSheet(f, sheet) {
		sheet = f.GetSheetList()[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		writeText(w, http.StatusBadRequest, "invalid xlsx")
		return
	}

	rep := importReport{Errors: []string{}}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		item := rowToFurniture(row)
		if item.Name == "" {
			continue
		}
		created, err := s.furnitures.Upsert(r.Context(), item)
		if err != nil {
			rep.Skipped++
			rep.Errors = append(rep.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if created {
			rep.Created++
		} else {
			rep.Updated++
		}
	}
	log.Info().Int("created", rep.Created).Int("updated", rep.Updated).
		Int("skipped", rep.Skipped).Msg("catalog import")
	writeJSON(w, http.StatusOK, rep)
}

func hasSheet(f *excelize.File, name string) bool {
	for _, sh := range f.GetSheetList() {
		if sh == name {
			return true
		}
	}
	return false
}

func rowToFurniture(row []string) *domain.Furniture {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	item := &domain.Furniture{
		Name:        get(0),
		Description: get(1),
		Category:    get(2),
		Dimensions:  get(3),
		Color:       get(5),
		Style:       get(6),
		ImageURL:    get(8),
	}
	if mats := get(4); mats != "" {
		for _, m := range strings.Split(mats, ",") {
			if m = strings.TrimSpace(m); m != "" {
				item.Materials = append(item.Materials, m)
			}
		}
	}
	item.Price, _ = strconv.ParseFloat(get(7), 64)
	item.Quantity, _ = strconv.Atoi(get(9))
	return item
}
