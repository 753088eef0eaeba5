package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"BlogDesk/internal/cli/model"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// parsePagination reads optional [page] [size] arguments.
func parsePagination(args []string) (model.Pagination, error) {
	var pg model.Pagination
	if len(args) > 2 {
		return pg, ErrUsage
	}
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 0 {
			return pg, ErrUsage
		}
		pg.Page = p
	}
	if len(args) > 1 {
		s, err := strconv.Atoi(args[1])
		if err != nil || s <= 0 {
			return pg, ErrUsage
		}
		pg.Size = s
	}
	return pg, nil
}

// parseSize reads an optional positive [size]; 0 means the endpoint default.
func parseSize(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return 0, ErrUsage
		}
		return n, nil
	default:
		return 0, ErrUsage
	}
}

// readPayload loads a JSON document from path, or from In when path is "-".
func readPayload(path string) (json.RawMessage, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(In)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if !json.Valid(b) {
		return nil, errors.New("payload is not valid JSON")
	}
	return json.RawMessage(b), nil
}
