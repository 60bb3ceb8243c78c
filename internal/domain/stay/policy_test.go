package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, Policy{MinNights: 1, MaxNights: 14}.Validate())
	assert.NoError(t, Policy{MinNights: 3, MaxNights: 3}.Validate())
	assert.ErrorIs(t, Policy{MinNights: 0, MaxNights: 5}.Validate(), ErrInvalidPolicy)
	assert.ErrorIs(t, Policy{MinNights: 5, MaxNights: 3}.Validate(), ErrInvalidPolicy)
}

func TestIsDisabled(t *testing.T) {
	today := date(2024, 6, 10)
	policy := Policy{MinNights: 3, MaxNights: 5}

	t.Run("past dates always disabled", func(t *testing.T) {
		for _, r := range []Range{{}, Anchored(date(2024, 6, 15)), {From: date(2024, 6, 15), To: date(2024, 6, 18)}} {
			assert.True(t, IsDisabled(date(2024, 6, 9), today, r, policy))
		}
	})

	t.Run("today itself is selectable", func(t *testing.T) {
		assert.False(t, IsDisabled(today, today, Range{}, policy))
	})

	t.Run("no anchor leaves future dates enabled", func(t *testing.T) {
		assert.False(t, IsDisabled(date(2024, 6, 20), today, Range{}, policy))
		assert.False(t, IsDisabled(date(2025, 6, 10), today, Range{}, policy))
	})

	t.Run("anchored selection applies stay bounds", func(t *testing.T) {
		anchored := Anchored(date(2024, 6, 15))

		// min boundary: from + (minNights - 1) stays clickable
		assert.False(t, IsDisabled(date(2024, 6, 17), today, anchored, policy))
		// one short of the boundary is disabled
		assert.True(t, IsDisabled(date(2024, 6, 16), today, anchored, policy))
		assert.True(t, IsDisabled(date(2024, 6, 15), today, anchored, policy))
		// max boundary: from + maxNights stays clickable, one past is not
		assert.False(t, IsDisabled(date(2024, 6, 20), today, anchored, policy))
		assert.True(t, IsDisabled(date(2024, 6, 21), today, anchored, policy))
	})

	t.Run("dates before the anchor stay enabled for re-anchoring", func(t *testing.T) {
		anchored := Anchored(date(2024, 6, 15))
		assert.False(t, IsDisabled(date(2024, 6, 12), today, anchored, policy))
	})

	t.Run("complete selection imposes no bounds", func(t *testing.T) {
		complete := Range{From: date(2024, 6, 15), To: date(2024, 6, 18)}
		assert.False(t, IsDisabled(date(2024, 6, 30), today, complete, policy))
	})
}

func TestValidateRange(t *testing.T) {
	policy := Policy{MinNights: 3, MaxNights: 5}

	cases := []struct {
		name   string
		nights int
		want   error
	}{
		{"below minimum", 1, ErrStayTooShort},
		{"one short of minimum", 2, ErrStayTooShort},
		{"exact minimum", 3, nil},
		{"between bounds", 4, nil},
		{"exact maximum", 5, nil},
		{"one past maximum", 6, ErrStayTooLong},
	}
	from := date(2024, 6, 1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRange(from, from.AddDate(0, 0, tc.nights))
			require.NoError(t, err)
			if tc.want == nil {
				assert.NoError(t, ValidateRange(r, policy))
			} else {
				assert.ErrorIs(t, ValidateRange(r, policy), tc.want)
			}
		})
	}

	t.Run("incomplete range is invalid", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRange(Anchored(from), policy), ErrInvalidRange)
		assert.ErrorIs(t, ValidateRange(Range{}, policy), ErrInvalidRange)
	})

	t.Run("stay length counts nights not dates", func(t *testing.T) {
		// 3 occupied dates are only 2 nights: too short for min 3
		r, err := NewRange(from, from.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.ErrorIs(t, ValidateRange(r, policy), ErrStayTooShort)
	})
}

func TestCommitSelect(t *testing.T) {
	d1 := date(2024, 6, 1)
	d2 := date(2024, 6, 4)

	t.Run("empty selection anchors the candidate", func(t *testing.T) {
		got := CommitSelect(d1, Range{})
		assert.Equal(t, Anchored(d1), got)
		assert.Equal(t, StateAnchored, got.State())
	})

	t.Run("anchored selection completes with a later date", func(t *testing.T) {
		got := CommitSelect(d2, Anchored(d1))
		assert.Equal(t, Range{From: d1, To: d2}, got)
		assert.Equal(t, StateComplete, got.State())
	})

	t.Run("complete selection restarts", func(t *testing.T) {
		got := CommitSelect(date(2024, 6, 20), Range{From: d1, To: d2})
		assert.Equal(t, Anchored(date(2024, 6, 20)), got)
	})

	t.Run("candidate before anchor re-anchors", func(t *testing.T) {
		earlier := date(2024, 5, 28)
		got := CommitSelect(earlier, Anchored(d1))
		assert.Equal(t, Anchored(earlier), got)
	})

	t.Run("round trip from empty to complete", func(t *testing.T) {
		policy := Policy{MinNights: 1, MaxNights: 14}
		step1 := CommitSelect(d1, Range{})
		step2 := CommitSelect(d2, step1)
		require.Equal(t, Range{From: d1, To: d2}, step2)
		assert.NoError(t, ValidateRange(step2, policy))
	})

	t.Run("candidate equal to anchor proposes a zero-night range", func(t *testing.T) {
		got := CommitSelect(d1, Anchored(d1))
		assert.Equal(t, Range{From: d1, To: d1}, got)
		assert.ErrorIs(t, ValidateRange(got, Policy{MinNights: 1, MaxNights: 14}), ErrStayTooShort)
	})
}

func TestRangeState(t *testing.T) {
	assert.Equal(t, StateEmpty, Range{}.State())
	assert.Equal(t, StateAnchored, Anchored(date(2024, 6, 1)).State())
	assert.Equal(t, StateComplete, Range{From: date(2024, 6, 1), To: date(2024, 6, 2)}.State())
}

func TestNewRange(t *testing.T) {
	_, err := NewRange(date(2024, 6, 2), date(2024, 6, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewRange(date(2024, 6, 1), date(2024, 6, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Nights())
}
