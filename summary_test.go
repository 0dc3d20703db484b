package skim_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 97.6, skim.CompressionRatio(1274, 30), 0.001)
	assert.InDelta(t, 50.0, skim.CompressionRatio(100, 50), 0.001)
	assert.InDelta(t, 0.0, skim.CompressionRatio(100, 150), 0.001)
	assert.InDelta(t, 100.0, skim.CompressionRatio(100, 0), 0.001)
	assert.InDelta(t, 0.0, skim.CompressionRatio(0, 10), 0.001)
}

func TestSummaryRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts text and known length", func(t *testing.T) {
		t.Parallel()

		req := skim.SummaryRequest{Text: "Some text.", Length: skim.LengthShort}

		assert.NoError(t, req.Validate())
	})

	t.Run("rejects blank text", func(t *testing.T) {
		t.Parallel()

		req := skim.SummaryRequest{Text: " \n ", Length: skim.LengthShort}

		assert.Equal(t, skim.EINVALID, skim.ErrorCode(req.Validate()))
	})

	t.Run("rejects unknown length", func(t *testing.T) {
		t.Parallel()

		req := skim.SummaryRequest{Text: "Some text.", Length: "huge"}

		assert.Equal(t, skim.EINVALID, skim.ErrorCode(req.Validate()))
	})
}

func TestSummaryResult_OK(t *testing.T) {
	t.Parallel()

	var nilResult *skim.SummaryResult

	assert.False(t, nilResult.OK())
	assert.False(t, (&skim.SummaryResult{Status: skim.SummaryFailed}).OK())
	assert.True(t, (&skim.SummaryResult{Status: skim.SummaryOK}).OK())
}

func TestSummaryResult_JSON(t *testing.T) {
	t.Parallel()

	res := &skim.SummaryResult{
		Length:         skim.LengthShort,
		Summary:        "The council approved the plan.",
		Status:         skim.SummaryOK,
		ProcessingTime: 1500 * time.Millisecond,
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.InDelta(t, 1.5, fields["processingSeconds"], 0.0001)
	assert.NotContains(t, fields, "processingTime")
	assert.Equal(t, "short", fields["length"])

	var back skim.SummaryResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *res, back)
}
