package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
)

const filePerm = 0600

// utf8BOM is stripped from the first header cell; spreadsheet tools like to add it.
const utf8BOM = "\ufeff"

// csvTable is one comma-separated file with a fixed header row.
type csvTable struct {
	fs     afero.Fs
	path   string
	header []string
}

func newCSVTable(fs afero.Fs, path string, header ...string) *csvTable {
	return &csvTable{fs: fs, path: path, header: header}
}

// exists reports whether the backing file is present.
func (t *csvTable) exists() (bool, error) {
	ok, err := afero.Exists(t.fs, t.path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", t.path, err)
	}
	return ok, nil
}

// read returns the data rows below the header. Every failure, including a
// missing file, wraps common.ErrStorageUnreadable; a missing file also
// matches os.ErrNotExist.
func (t *csvTable) read() ([][]string, error) {
	data, err := afero.ReadFile(t.fs, t.path)
	if err != nil {
		return nil, common.Unreadable(t.path, err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(t.header)

	header, err := r.Read()
	if err == io.EOF {
		// Zero-byte file: nothing recorded yet.
		return nil, nil
	}
	if err != nil {
		return nil, common.Unreadable(t.path, err)
	}
	if err := t.checkHeader(header); err != nil {
		return nil, common.Unreadable(t.path, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, common.Unreadable(t.path, err)
	}

	return rows, nil
}

func (t *csvTable) checkHeader(got []string) error {
	for i, want := range t.header {
		cell := strings.TrimSpace(got[i])
		if i == 0 {
			cell = strings.TrimPrefix(cell, utf8BOM)
		}
		if cell != want {
			return fmt.Errorf("unexpected header %q, want %q", strings.Join(got, ","), strings.Join(t.header, ","))
		}
	}
	return nil
}

// write replaces the file with the header followed by rows.
func (t *csvTable) write(rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, row := range rows {
		// A lone empty field would encode as a blank line, which readers skip.
		if len(row) == 1 && row[0] == "" {
			w.Flush()
			buf.WriteString("\"\"\n")
			continue
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}

	return writeFileAtomic(t.fs, t.path, buf.Bytes(), filePerm)
}
