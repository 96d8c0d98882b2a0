package gammaindex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNormalizationRoundTrip(t *testing.T) {
	for _, n := range []Normalization{Global, Local, Absolute} {
		got, err := ParseNormalization(n.String())
		require.NoError(t, err, "ParseNormalization(%q)", n.String())
		require.Equal(t, n, got)
	}
}

func TestParseNormalizationRejectsUnknown(t *testing.T) {
	// Scenario S6: an invalid normalization literal is rejected before
	// any Compute run begins.
	_, err := ParseNormalization("relative")
	require.ErrorIs(t, err, ErrConfig)
}

func TestParamsValidateRejectsNonPositive(t *testing.T) {
	base := Params{Diff: 0.03, DTA: 3, Threshold: 0.1}

	cases := []Params{
		{Diff: 0, DTA: base.DTA, Threshold: base.Threshold},
		{Diff: base.Diff, DTA: 0, Threshold: base.Threshold},
		{Diff: base.Diff, DTA: base.DTA, Threshold: 0},
		{Diff: -1, DTA: base.DTA, Threshold: base.Threshold},
	}
	for _, p := range cases {
		require.ErrorIsf(t, p.Validate(), ErrConfig, "Validate(%+v)", p)
	}

	require.NoError(t, base.Validate())
}
