package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "casework/pkg/domain-errors"
)

// TestParseExternalIdentifiers validates the parsing invariant:
// "external identifiers are normalised and must match their published format"
//
// Justification: Pure functions enforcing a domain invariant at trust boundaries.
func TestParseExternalIdentifiers(t *testing.T) {
	t.Run("CRN is upper-cased and trimmed", func(t *testing.T) {
		crn, err := ParseCRN(" x123456 ")
		require.NoError(t, err)
		assert.Equal(t, CRN("X123456"), crn)
	})

	t.Run("CRN rejects wrong shape", func(t *testing.T) {
		for _, in := range []string{"", "X12345", "1234567", "XX23456", "X1234567"} {
			_, err := ParseCRN(in)
			require.Error(t, err, in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})

	t.Run("NOMS number accepts canonical form", func(t *testing.T) {
		noms, err := ParseNOMSNumber("g9542vp")
		require.NoError(t, err)
		assert.Equal(t, NOMSNumber("G9542VP"), noms)
	})

	t.Run("NOMS number rejects wrong shape", func(t *testing.T) {
		for _, in := range []string{"", "G9542V", "99542VP", "G95421P"} {
			_, err := ParseNOMSNumber(in)
			require.Error(t, err, in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})

	t.Run("booking number rejects punctuation", func(t *testing.T) {
		_, err := ParseBookingNumber("44463B;")
		require.Error(t, err)
		b, err := ParseBookingNumber("44463b")
		require.NoError(t, err)
		assert.Equal(t, BookingNumber("44463B"), b)
	})
}

func TestParseNumericIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty", "", false},
		{"zero", "0", false},
		{"negative", "-4", false},
		{"not a number", "abc", false},
		{"overflow", "99999999999999999999", false},
		{"valid", "2500295345", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caseID, err := ParseCaseID(tt.input)
			_, err2 := ParseEventID(tt.input)
			if tt.valid {
				require.NoError(t, err)
				require.NoError(t, err2)
				assert.Equal(t, tt.input, caseID.String())
				return
			}
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			assert.True(t, dErrors.HasCode(err2, dErrors.CodeInvalidInput))
		})
	}
}
