package fraud

import (
	"testing"

	"vigil/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name  string
		a     models.Coordinate
		b     models.Coordinate
		want  float64
		delta float64
	}{
		{
			name:  "same point",
			a:     models.Coordinate{Latitude: 13.0827, Longitude: 80.2707},
			b:     models.Coordinate{Latitude: 13.0827, Longitude: 80.2707},
			want:  0,
			delta: 1e-9,
		},
		{
			name:  "one degree of latitude",
			a:     models.Coordinate{Latitude: 0, Longitude: 0},
			b:     models.Coordinate{Latitude: 1, Longitude: 0},
			want:  111.19,
			delta: 0.05,
		},
		{
			name:  "antipodal points",
			a:     models.Coordinate{Latitude: 0, Longitude: 0},
			b:     models.Coordinate{Latitude: 0, Longitude: 180},
			want:  20015.1,
			delta: 0.1,
		},
		{
			name:  "london to paris",
			a:     models.Coordinate{Latitude: 51.5074, Longitude: -0.1278},
			b:     models.Coordinate{Latitude: 48.8566, Longitude: 2.3522},
			want:  343.5,
			delta: 2.0,
		},
		{
			name:  "new york to chennai",
			a:     models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
			b:     models.Coordinate{Latitude: 13.0827, Longitude: 80.2707},
			want:  13473,
			delta: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := models.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	b := models.Coordinate{Latitude: 13.0827, Longitude: 80.2707}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}
