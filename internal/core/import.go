package core

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inovacc/sshcm/internal/encoding"
	"github.com/inovacc/sshcm/internal/model"
	"github.com/inovacc/sshcm/internal/store"
	"github.com/inovacc/sshcm/internal/validate"
)

// ImportResult summarizes an import run. Notes carries one message per
// problem row, in input order; a populated Notes slice is not a
// failure.
type ImportResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Notes    []string
}

// Import reads CSV rows from r and reconciles them with the store in
// strict input order: an existing nickname becomes an update merging
// the row's non-empty columns, anything else becomes an insert. A row
// without a nickname is skipped, as is any malformed line; neither
// aborts the rest of the input.
func Import(st store.Store, r io.Reader) (ImportResult, error) {
	reader, err := encoding.NewReader(r)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult

	for {
		row, line, err := reader.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			result.Skipped++
			result.Notes = append(result.Notes, fmt.Sprintf("line %d: %v", line, err))

			continue
		}

		if err := importRow(st, row, &result); err != nil {
			result.Skipped++
			result.Notes = append(result.Notes, fmt.Sprintf("line %d: %v", line, err))
		}
	}

	return result, nil
}

func importRow(st store.Store, row encoding.Row, result *ImportResult) error {
	nickname := row["nickname"]
	if nickname == "" {
		return fmt.Errorf("row has no nickname")
	}

	if !validate.IsNickname(nickname) {
		return &BadNicknameError{Nickname: nickname}
	}

	existing, err := st.GetConnectionByNickname(nickname)
	if err != nil {
		return err
	}

	if existing != nil {
		return importUpdate(st, existing, row, result)
	}

	return importInsert(st, nickname, row, result)
}

// importUpdate merges only the non-empty supplied columns onto the
// existing row. The id column is insert-only; reassigning ids through
// an import would turn a merge into an identity change.
func importUpdate(st store.Store, existing *model.Connection, row encoding.Row, result *ImportResult) error {
	changes := make(map[string]string)

	if host := row["host"]; host != "" && host != existing.Host {
		changes["host"] = host
	}

	for _, column := range model.OptionalColumns {
		if value := row[column]; value != "" {
			changes[column] = value
		}
	}

	if len(changes) > 0 {
		if err := st.UpdateConnection(existing.ID, changes); err != nil {
			return err
		}
	}

	result.Updated++

	return nil
}

func importInsert(st store.Store, nickname string, row encoding.Row, result *ImportResult) error {
	if row["host"] == "" {
		return &MissingFieldError{Field: "host"}
	}

	c := model.Connection{
		Nickname:    nickname,
		Host:        row["host"],
		User:        model.Ptr(row["user"]),
		Description: model.Ptr(row["description"]),
		Args:        model.Ptr(row["args"]),
		Identity:    model.Ptr(row["identity"]),
		Command:     model.Ptr(row["command"]),
		Binary:      model.Ptr(row["binary"]),
	}

	// An id column is a best-effort request, same as add -id.
	if idValue := row["id"]; idValue != "" {
		if id, err := strconv.ParseInt(idValue, 10, 64); err == nil && id > 0 {
			c.ID = id
		}
	}

	requested := c.ID

	id, tookRequested, err := st.InsertConnection(&c)
	if err != nil {
		return err
	}

	if requested > 0 && !tookRequested {
		result.Notes = append(result.Notes,
			fmt.Sprintf("nickname %s: requested id %d was taken, assigned %d", nickname, requested, id))
	}

	result.Inserted++

	return nil
}
