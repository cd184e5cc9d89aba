// Package encoding implements the flat delimited text format used by
// the export and import commands.
package encoding

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inovacc/sshcm/internal/model"
)

// Columns is the export header, in emit order.
var Columns = []string{"id", "nickname", "host", "user", "description", "args", "identity", "command", "binary"}

// ErrMissingHeader means the import input was empty.
var ErrMissingHeader = errors.New("missing CSV header")

// WriteConnections emits the header followed by one row per profile,
// raw stored values, nulls as empty fields.
func WriteConnections(w io.Writer, conns []model.Connection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return err
	}

	for _, c := range conns {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Nickname,
			c.Host,
			model.Deref(c.User),
			model.Deref(c.Description),
			model.Deref(c.Args),
			model.Deref(c.Identity),
			model.Deref(c.Command),
			model.Deref(c.Binary),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// Row is one decoded import line: a column-name to value map built
// from the header's column order.
type Row map[string]string

// Reader decodes import input line by line. Each line is parsed
// independently so one malformed line never aborts the rest of the
// stream.
type Reader struct {
	scanner *bufio.Scanner
	header  []string
	line    int
}

// NewReader reads the header line from r. An empty input yields
// ErrMissingHeader.
func NewReader(r io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}

		return nil, ErrMissingHeader
	}

	header, err := parseLine(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("malformed header: %w", err)
	}

	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	return &Reader{scanner: scanner, header: header, line: 1}, nil
}

// Next returns the next decoded row. Column order follows the header;
// extra and missing trailing columns are tolerated. Malformed lines
// return an error together with the line number; the reader stays
// usable. io.EOF signals the end of input.
func (r *Reader) Next() (Row, int, error) {
	for r.scanner.Scan() {
		r.line++

		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields, err := parseLine(text)
		if err != nil {
			return nil, r.line, fmt.Errorf("malformed line: %w", err)
		}

		row := make(Row, len(r.header))

		for i, col := range r.header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}

		return row, r.line, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, r.line, err
	}

	return nil, r.line, io.EOF
}

// parseLine splits one comma-delimited line, honoring quoting.
func parseLine(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1

	return cr.Read()
}
