package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromTriples(t *testing.T) {
	cases, err := FromTriples(
		[]string{"q0", "q1"},
		[]string{"a0", "a1"},
		[]int{3, 7},
	)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, 0, cases[0].ID)
	require.Equal(t, "q1", cases[1].Question)
	require.Equal(t, "a1", cases[1].ExpectedAnswer)
	require.Equal(t, 7, cases[1].ExpectedPage)
}

func TestFromTriplesShapeMismatch(t *testing.T) {
	_, err := FromTriples(
		[]string{"q0", "q1"},
		[]string{"a0"},
		[]int{3, 7},
	)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromTriples(
		[]string{"q0"},
		[]string{"a0"},
		[]int{3, 7},
	)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromTriplesInvalidPage(t *testing.T) {
	_, err := FromTriples(
		[]string{"q0", "q1"},
		[]string{"a0", "a1"},
		[]int{3, 0},
	)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidPage)

	_, err = FromTriples(
		[]string{"q0"},
		[]string{"a0"},
		[]int{-4},
	)
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestApple10K(t *testing.T) {
	fs := Apple10K()
	require.Equal(t, "apple-10k", fs.Name())

	cases, err := fs.Cases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 10)
	for i, c := range cases {
		require.Equal(t, i, c.ID)
		require.NotEmpty(t, c.Question)
		require.NotEmpty(t, c.ExpectedAnswer)
		require.Positive(t, c.ExpectedPage)
	}
	require.Equal(t, 22, cases[0].ExpectedPage)
}

func TestFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	content := `[
  {"question": "net sales?", "expected_answer": "$391,035 million", "expected_page": 24},
  {"question": "employees?", "expected_answer": "164,000", "expected_page": 4}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fs := NewFile(path)
	cases, err := fs.Cases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, "net sales?", cases[0].Question)
	require.Equal(t, 24, cases[0].ExpectedPage)
	require.Equal(t, 1, cases[1].ID)
}

func TestFileJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.jsonl")
	content := `{"question": "q0", "expected_answer": "a0", "expected_page": 1}
{"question": "q1", "expected_answer": "a1", "expected_page": 2}

{"question": "q2", "expected_answer": "a2", "expected_page": 3}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fs := NewFile(path)
	cases, err := fs.Cases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 3)
	require.Equal(t, "q2", cases[2].Question)
	require.Equal(t, 2, cases[2].ID)
}

func TestFileInvalidPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.json")
	content := `[{"question": "q0", "expected_answer": "a0", "expected_page": 0}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewFile(path).Cases(context.Background())
	require.ErrorIs(t, err, ErrInvalidPage)
}

func TestFileMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "absent.json")).Cases(context.Background())
	require.Error(t, err)
}

func TestSliceCopies(t *testing.T) {
	items, err := FromTriples([]string{"q0"}, []string{"a0"}, []int{1})
	require.NoError(t, err)

	s := NewSlice(items, "")
	require.Equal(t, "inline", s.Name())

	got, err := s.Cases(context.Background())
	require.NoError(t, err)
	got[0].Question = "mutated"

	again, err := s.Cases(context.Background())
	require.NoError(t, err)
	require.Equal(t, "q0", again[0].Question)
}
