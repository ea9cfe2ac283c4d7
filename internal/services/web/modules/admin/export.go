package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
	"github.com/rs/zerolog"
)

// utf8BOM lets spreadsheet tools detect the encoding.
const utf8BOM = "\xEF\xBB\xBF"

var (
	registrantHeader = []string{"id", "first_name", "last_name", "email", "phone", "location", "interest_area", "investment_level", "registration_date"}
	workshopHeader   = []string{"id", "first_name", "last_name", "email", "phone", "workshop_type", "payment_method", "registration_date"}
)

func (h handlers) handleExportRegistrants(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "registrants.csv", func() ([]byte, error) {
		if h.store == nil {
			return nil, errStoreMissing
		}
		rows, err := h.store.ListRegistrants(r.Context())
		if err != nil {
			return nil, err
		}
		return encodeRegistrants(rows)
	})
}

func (h handlers) handleExportWorkshopRegistrants(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "workshop-registrations.csv", func() ([]byte, error) {
		if h.store == nil {
			return nil, errStoreMissing
		}
		rows, err := h.store.ListWorkshopRegistrants(r.Context())
		if err != nil {
			return nil, err
		}
		return encodeWorkshopRegistrants(rows)
	})
}

// writeExport sends the encoded file as an attachment. The body is built in
// full first so a failure can still redirect.
func (h handlers) writeExport(w http.ResponseWriter, r *http.Request, filename string, build func() ([]byte, error)) {
	body, err := build()
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("file", filename).Msg("export registrations")
		h.RedirectWithNotice(w, r, flashnotice.NoticeError(keyExportFailed), routepath.Admin)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func encodeRegistrants(rows []storage.Registrant) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.FormatInt(row.ID, 10),
			row.FirstName,
			row.LastName,
			row.Email,
			row.Phone,
			row.Location,
			row.InterestArea,
			row.InvestmentLevel,
			formatDate(row.RegistrationDate),
		})
	}
	return encodeCSV(registrantHeader, records)
}

func encodeWorkshopRegistrants(rows []storage.WorkshopRegistrant) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.FormatInt(row.ID, 10),
			row.FirstName,
			row.LastName,
			row.Email,
			row.Phone,
			row.WorkshopType,
			row.PaymentMethod,
			formatDate(row.RegistrationDate),
		})
	}
	return encodeCSV(workshopHeader, records)
}

func encodeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
