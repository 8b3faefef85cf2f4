package csvio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourclock/internal/csvio"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/testutil"
)

func TestExportGolden(t *testing.T) {
	var buf bytes.Buffer

	err := csvio.Export(&buf, testutil.SampleSegments())
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, testutil.Golden{
		Name:     "sample_clock",
		Snapshot: buf.Bytes(),
	})
}

func TestImport(t *testing.T) {
	input := `Start,LABEL,end
00:00,Show Segment,14:00
14:00,,29:00
29:00,Network Break
44:00,News,60:00
aa:00,Broken,10:00
10:00,Nothing,10:00
59:00,Bridge,01:00
`

	res, err := csvio.Import(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Drafts, 3)

	assert.Equal(t, "Show Segment", res.Drafts[0].Label)
	assert.Equal(t, 0, res.Drafts[0].StartSeconds)
	assert.Equal(t, 840, res.Drafts[0].Duration)

	assert.Equal(t, "News", res.Drafts[1].Label)
	assert.Equal(t, 960, res.Drafts[1].Duration)

	assert.Equal(t, "Bridge", res.Drafts[2].Label)
	assert.Equal(t, 3540, res.Drafts[2].StartSeconds)
	assert.Equal(t, 120, res.Drafts[2].Duration)

	for _, d := range res.Drafts {
		assert.True(t, segment.ValidColor(d.Color), "color %q", d.Color)
	}

	lines := make([]int, len(res.Skipped))
	for i, s := range res.Skipped {
		lines[i] = s.Line
	}

	assert.Equal(t, []int{3, 4, 6, 7}, lines)
}

func TestImportRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, csvio.Export(&buf, testutil.SampleSegments()))

	res, err := csvio.Import(&buf)
	require.NoError(t, err)
	require.Len(t, res.Drafts, 4)

	for i, s := range testutil.SampleSegments() {
		assert.Equal(t, segment.Draft{
			Label:        s.Label,
			StartSeconds: s.StartSeconds,
			Duration:     s.Duration,
			Color:        s.Color,
		}, res.Drafts[i])
	}
}

func TestWholeHourRoundTrip(t *testing.T) {
	segs := []models.Segment{
		{ID: "a", Label: "Whole hour", Color: "#123456", StartSeconds: 0, Duration: 3600},
		{ID: "b", Label: "Shifted hour", Color: "#654321", StartSeconds: 600, Duration: 3600},
	}

	var buf bytes.Buffer

	require.NoError(t, csvio.Export(&buf, segs))
	assert.Equal(t,
		"label,start,end,color\nWhole hour,00:00,60:00,#123456\nShifted hour,10:00,70:00,#654321\n",
		buf.String(),
	)

	res, err := csvio.Import(&buf)
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	require.Len(t, res.Drafts, 2)
	assert.Equal(t, 3600, res.Drafts[0].Duration)
	assert.Equal(t, 600, res.Drafts[1].StartSeconds)
	assert.Equal(t, 3600, res.Drafts[1].Duration)
}

func TestImportInvalidColorFallsBackToRandom(t *testing.T) {
	res, err := csvio.Import(strings.NewReader("label,start,end,color\nA,00:00,01:00,purple\n"))
	require.NoError(t, err)
	require.Len(t, res.Drafts, 1)

	assert.True(t, segment.ValidColor(res.Drafts[0].Color))
	assert.Empty(t, res.Skipped)
}

func TestImportMissingColumns(t *testing.T) {
	_, err := csvio.Import(strings.NewReader("name,start,end\nA,00:00,01:00\n"))
	assert.ErrorIs(t, err, csvio.ErrMissingColumns)

	_, err = csvio.Import(strings.NewReader(""))
	assert.ErrorIs(t, err, csvio.ErrMissingColumns)
}
