package samplefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// CaseIDColumn is the column AddCaseIDs prepends to a sample file.
const CaseIDColumn = "CASE_ID"

// AddCaseIDs copies a sample file from r to w with a leading CASE_ID
// column holding a fresh identifier for every row. newID defaults to
// uuid.New. It returns the number of data rows written.
func AddCaseIDs(r io.Reader, w io.Writer, newID func() uuid.UUID, opts ...Option) (int, error) {
	if newID == nil {
		newID = uuid.New
	}

	src, err := Open(r, opts...)
	if err != nil {
		return 0, err
	}

	out := csv.NewWriter(w)
	if err := out.Write(append([]string{CaseIDColumn}, src.Header()...)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	rows := 0
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, err
		}
		if err := out.Write(append([]string{newID().String()}, rec.Values()...)); err != nil {
			return rows, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		rows++
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return rows, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return rows, nil
}
