package fixture

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ragcheck/pkg/core"
)

// File loads a fixture set from a JSON array or JSONL file. Records carry
// question, expected_answer, and expected_page fields; IDs are assigned
// by position regardless of file contents.
type File struct {
	Path     string
	NameHint string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Name() string {
	if f.NameHint != "" {
		return f.NameHint
	}
	return filepath.Base(f.Path)
}

type record struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	ExpectedPage   int    `json:"expected_page"`
}

func (f *File) Cases(ctx context.Context) ([]core.Case, error) {
	format, err := detectFormat(f.Path)
	if err != nil {
		return nil, err
	}

	var records []record
	switch format {
	case "json":
		records, err = loadJSONRecords(f.Path)
	case "jsonl":
		records, err = loadJSONLRecords(ctx, f.Path)
	default:
		err = errors.New("fixture: unsupported format")
	}
	if err != nil {
		return nil, err
	}

	cases := make([]core.Case, len(records))
	for i, rec := range records {
		if rec.ExpectedPage < 1 {
			return nil, fmt.Errorf("%w: case %d has page %d", ErrInvalidPage, i, rec.ExpectedPage)
		}
		cases[i] = core.Case{
			ID:             i,
			Question:       rec.Question,
			ExpectedAnswer: rec.ExpectedAnswer,
			ExpectedPage:   rec.ExpectedPage,
		}
	}
	return cases, nil
}

func detectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jsonl":
		return "jsonl", nil
	case ".json":
		return "json", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		if b == '[' {
			return "json", nil
		}
		if b == '{' {
			return "jsonl", nil
		}
		return "", errors.New("fixture: unsupported format")
	}
}

func loadJSONRecords(path string) ([]record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []record
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func loadJSONLRecords(ctx context.Context, path string) ([]record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	var records []record
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
