package puzzle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSolver struct {
	day int
	err error
}

func (s stubSolver) Day() int     { return s.day }
func (s stubSolver) Name() string { return "stub" }

func (s stubSolver) Part1(lines []string) (string, error) {
	return FormatInt(len(lines)), s.err
}

func (s stubSolver) Part2(lines []string) (string, error) {
	return FormatInt(2 * len(lines)), s.err
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(stubSolver{day: 4}, stubSolver{day: 1}, stubSolver{day: 3})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 4}, r.Days())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())

	_, err = r.Lookup(9)
	assert.ErrorIs(t, err, ErrUnknownDay)

	err = r.Register(stubSolver{day: 1})
	assert.ErrorIs(t, err, ErrDuplicateDay)

	_, err = NewRegistry(stubSolver{day: 2}, stubSolver{day: 2})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c"}
	s := stubSolver{day: 1}

	got, err := Solve(s, 1, lines)
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = Solve(s, 2, lines)
	require.NoError(t, err)
	assert.Equal(t, "6", got)

	_, err = Solve(s, 3, lines)
	assert.ErrorIs(t, err, ErrInvalidPart)

	boom := errors.New("boom")
	_, err = Solve(stubSolver{day: 1, err: boom}, 1, lines)
	assert.ErrorIs(t, err, boom)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single line", in: "abc", want: []string{"abc"}},
		{name: "trailing newline dropped", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "inner blank kept", in: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "only newline", in: "\n", want: []string{""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, SplitLines(tc.in)); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "-12", FormatInt(-12))
	assert.Equal(t, "18446744073709551615", FormatUint(^uint64(0)))
}
