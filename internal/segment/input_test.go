package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourclock/internal/models"
)

func TestParseDraft(t *testing.T) {
	d, err := ParseDraft(Input{
		Label: " News ",
		Start: "44:00",
		End:   "60:00",
		Color: "10B981",
	})
	require.NoError(t, err)

	assert.Equal(t, Draft{
		Label:        "News",
		StartSeconds: 2640,
		Duration:     960,
		Color:        "#10b981",
	}, d)
}

func TestParseDraftWrapsPastTheHour(t *testing.T) {
	d, err := ParseDraft(Input{Label: "Bridge", Start: "59:00", End: "01:00"})
	require.NoError(t, err)

	assert.Equal(t, 3540, d.StartSeconds)
	assert.Equal(t, 120, d.Duration)
	assert.True(t, ValidColor(d.Color), "random color %q is not valid", d.Color)
}

func TestParseDraftWholeHour(t *testing.T) {
	d, err := ParseDraft(Input{Label: "Special", Start: "00:00", End: "60:00"})
	require.NoError(t, err)

	assert.Equal(t, 0, d.StartSeconds)
	assert.Equal(t, 3600, d.Duration)
}

func TestParseDraftErrors(t *testing.T) {
	cases := []struct {
		Name string
		In   Input
		Err  error
	}{
		{Name: "missing label", In: Input{Start: "00:00", End: "01:00"}, Err: errEmptyField},
		{Name: "missing start", In: Input{Label: "x", End: "01:00"}, Err: errEmptyField},
		{Name: "missing end", In: Input{Label: "x", Start: "01:00"}, Err: errEmptyField},
		{Name: "zero duration", In: Input{Label: "x", Start: "10:00", End: "10:00"}, Err: errZeroDuration},
		{Name: "end an hour before start", In: Input{Label: "x", Start: "60:00", End: "00:00"}, Err: errZeroDuration},
		{Name: "bad color", In: Input{Label: "x", Start: "00:00", End: "01:00", Color: "blue"}, Err: errInvalidColor},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ParseDraft(tc.In)
			assert.ErrorIs(t, err, tc.Err)
		})
	}

	_, err := ParseDraft(Input{Label: "x", Start: "aa:00", End: "01:00"})
	assert.Error(t, err)
}

func TestBuildPatch(t *testing.T) {
	seg := models.Segment{
		ID:           "a",
		Label:        "Commercial",
		StartSeconds: 840,
		Duration:     900,
		Color:        "#fbbf24",
	}

	p, err := BuildPatch(seg, Input{End: "30:00"})
	require.NoError(t, err)

	assert.Nil(t, p.Label)
	assert.Nil(t, p.Color)
	require.NotNil(t, p.StartSeconds)
	require.NotNil(t, p.Duration)
	assert.Equal(t, 840, *p.StartSeconds)
	assert.Equal(t, 960, *p.Duration)

	p, err = BuildPatch(seg, Input{Label: "Ads", Color: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, "Ads", *p.Label)
	assert.Equal(t, "#000000", *p.Color)
	assert.Nil(t, p.StartSeconds)

	_, err = BuildPatch(seg, Input{Start: "29:00"})
	assert.ErrorIs(t, err, errZeroDuration)
}
