package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeObjectType(t *testing.T) {
	tests := []struct {
		in   string
		want ObjectType
	}{
		{"streetlight", Streetlight},
		{"garbage_can", GarbageCan},
		{"road", Road},
		{"sidewalk", Sidewalk},
		{"park", Park},
		{"other", OtherObject},
		{"bogus", OtherObject},
		{"", OtherObject},
		{"Streetlight", OtherObject},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeObjectType(tt.in), "input %q", tt.in)
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"two characters rejected", "ab", "", true},
		{"five characters accepted", "abcde", "abcde", false},
		{"empty rejected", "", "", true},
		{"whitespace only rejected", "    ", "", true},
		{"padding trimmed before length check", "  abc  ", "", true},
		{"trimmed result returned", "  5th & Main  ", "5th & Main", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAddress(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPublicID(t *testing.T) {
	id := NewPublicID("OBJ")
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "OBJ", parts[0])
	assert.Len(t, parts[2], 9)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])

	assert.True(t, strings.HasPrefix(NewPublicID("QR"), "QR-"))
	assert.True(t, strings.HasPrefix(NewPublicID("ISSUE"), "ISSUE-"))

	assert.NotEqual(t, NewPublicID("OBJ"), NewPublicID("OBJ"))
}

func TestGeoPoint_Point(t *testing.T) {
	valid := NewGeoPoint(77.583, 12.930)
	point, ok := valid.Point()
	require.True(t, ok)
	assert.Equal(t, 77.583, point.Lon())
	assert.Equal(t, 12.930, point.Lat())

	var missing *GeoPoint
	_, ok = missing.Point()
	assert.False(t, ok)

	short := &GeoPoint{Type: "Point", Coordinates: []float64{77.583}}
	_, ok = short.Point()
	assert.False(t, ok)

	empty := &GeoPoint{Type: "Point"}
	_, ok = empty.Point()
	assert.False(t, ok)
}
