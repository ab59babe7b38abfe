package tract_test

import (
	"testing"

	"github.com/UnknownOlympus/tracts/internal/tract"
	"github.com/stretchr/testify/assert"
)

func TestPadTract(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "single digit", code: "5", want: "000500"},
		{name: "two digits", code: "42", want: "004200"},
		{name: "three digits", code: "123", want: "123000"},
		{name: "four digits", code: "1234", want: "123400"},
		{name: "five digits", code: "12345", want: "012345"},
		{name: "six digits", code: "450101", want: "450101"},
		{name: "empty", code: "", want: "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tract.PadTract(tt.code)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tract.TractWidth)
		})
	}
}

func TestGeoID(t *testing.T) {
	for _, code := range []string{"1", "12", "123", "1234", "12345", "123456"} {
		id := tract.GeoID("06", "075", code)
		assert.Len(t, id, tract.GeoIDWidth, code)
		assert.Equal(t, "06075", id[:5])
	}

	assert.Equal(t, "06075012345", tract.GeoID("06", "075", "12345"))
}
