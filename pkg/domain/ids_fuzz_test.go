//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseNOMSNumber tests that parsing never panics on arbitrary input
// and always returns either a valid number or an error.
func FuzzParseNOMSNumber(f *testing.F) {
	f.Add("")
	f.Add("G9542VP")
	f.Add("g9542vp ")
	f.Add("'; DROP TABLE offender;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("G9542VP\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		noms, err := ParseNOMSNumber(input)
		if err == nil {
			roundTrip, err2 := ParseNOMSNumber(noms.String())
			if err2 != nil {
				t.Errorf("valid NOMS number failed round-trip: %v", err2)
			}
			if roundTrip != noms {
				t.Error("round-trip changed value")
			}
		}
		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseCRN checks normalisation is idempotent.
func FuzzParseCRN(f *testing.F) {
	f.Add("X123456")
	f.Add("")
	f.Add("x1234567")

	f.Fuzz(func(t *testing.T, input string) {
		crn, err := ParseCRN(input)
		if err != nil {
			return
		}
		again, err := ParseCRN(string(crn))
		if err != nil || again != crn {
			t.Errorf("normalisation not idempotent for %q", input)
		}
	})
}
