package answerer

import (
	"context"
	"testing"

	"ragcheck/pkg/fixture"

	"github.com/stretchr/testify/require"
)

func TestParseCitation(t *testing.T) {
	answer, page := parseCitation("The company repurchased 33,653,000 shares.\nPAGE: 22")
	require.Equal(t, "The company repurchased 33,653,000 shares.", answer)
	require.Equal(t, 22, page)

	answer, page = parseCitation("I don't know.\nPAGE: none")
	require.Equal(t, "I don't know.", answer)
	require.Equal(t, 0, page)

	answer, page = parseCitation("No citation line at all.")
	require.Equal(t, "No citation line at all.", answer)
	require.Equal(t, 0, page)

	_, page = parseCitation("Something.\npage: 7")
	require.Equal(t, 7, page)

	_, page = parseCitation("Something.\nPAGE: -3")
	require.Equal(t, 0, page)
}

func TestScriptedEchoesFixtures(t *testing.T) {
	fs := fixture.Apple10K()
	echo, err := FromFixtures(context.Background(), fs)
	require.NoError(t, err)

	cases, err := fs.Cases(context.Background())
	require.NoError(t, err)

	for _, c := range cases {
		resp, err := echo.Answer(context.Background(), c.Question)
		require.NoError(t, err)
		require.Equal(t, c.ExpectedAnswer, resp.Answer)
		require.Equal(t, c.ExpectedPage, resp.Page)
	}
}

func TestStaticFallsBackToEcho(t *testing.T) {
	s := Static{}
	resp, err := s.Answer(context.Background(), "what is this?")
	require.NoError(t, err)
	require.Equal(t, "what is this?", resp.Answer)
	require.Equal(t, 0, resp.Page)
}
