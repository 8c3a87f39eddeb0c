package works

import (
	"context"
	"encoding/csv"
	"io"

	"flixhub/internal/identity"
)

type ExportRow struct {
	SourceID  string `json:"source_id"`
	WorkID    string `json:"work_id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Permalink string `json:"permalink"`
}

// Export assigns ids to every record in catalog order and returns one row
// per record. The history ends up holding an entry for each of them, written
// in one batch.
func (s *Service) Export(ctx context.Context) []ExportRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.gen.AssignAll(ctx, s.works)
	rows := make([]ExportRow, 0, len(s.works))
	for i, w := range s.works {
		id := ids[i]
		s.index.Put(id, w)
		rows = append(rows, ExportRow{
			SourceID:  string(w.ID),
			WorkID:    id,
			Title:     w.Title,
			Year:      identity.YearOrUnknown(w),
			Permalink: s.permalink(id),
		})
	}
	return rows
}

// WriteCSV writes Export as CSV with a header row.
func (s *Service) WriteCSV(ctx context.Context, out io.Writer) error {
	rows := s.Export(ctx)

	w := csv.NewWriter(out)
	if err := w.Write([]string{"source_id", "work_id", "title", "year", "permalink"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.SourceID, r.WorkID, r.Title, r.Year, r.Permalink}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
