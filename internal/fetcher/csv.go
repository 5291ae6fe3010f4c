package fetcher

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

// ReadCSV decodes a header-first CSV into rows. Columns other than the
// required three are ignored.
func ReadCSV(ctx context.Context, r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, eris.New("fetcher: csv has no header row")
	}
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv header")
	}
	header = normalizeHeader(header)
	if err := checkColumns(header); err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: csv decoder")
	}

	var rows []Row
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "fetcher: context cancelled")
		}

		var row Row
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: decode csv row")
		}
		row.Line, _ = cr.FieldPos(0)
		rows = append(rows, row)
	}

	return rows, nil
}
