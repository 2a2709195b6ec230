package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a    Point
		b    Point
		want float64
		tol  float64
	}{
		{name: "same point", a: Point{Lng: 72.8777, Lat: 19.0760}, b: Point{Lng: 72.8777, Lat: 19.0760}, want: 0, tol: 1e-9},
		{name: "one degree latitude", a: Point{Lng: 0, Lat: 0}, b: Point{Lng: 0, Lat: 1}, want: 111.195, tol: 0.01},
		{name: "mumbai to pune", a: Point{Lng: 72.8777, Lat: 19.0760}, b: Point{Lng: 73.8567, Lat: 18.5204}, want: 119.8, tol: 1.0},
		{name: "antipodal", a: Point{Lng: 0, Lat: 0}, b: Point{Lng: 180, Lat: 0}, want: math.Pi * EarthRadiusKm, tol: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tol {
				t.Fatalf("DistanceKm(%s, %s)=%.4f want=%.4f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceKm_SymmetricAndBounded(t *testing.T) {
	points := []Point{
		{Lng: 0, Lat: 0},
		{Lng: -122.4194, Lat: 37.7749},
		{Lng: 151.2093, Lat: -33.8688},
		{Lng: 179.9, Lat: 89.9},
		{Lng: -179.9, Lat: -89.9},
		{Lng: 400, Lat: 120},
	}

	maxKm := math.Pi*EarthRadiusKm + 1e-6
	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(a, b)
			ba := DistanceKm(b, a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("expected symmetric distance for %s/%s: %.9f vs %.9f", a, b, ab, ba)
			}
			if ab < 0 || ab > maxKm {
				t.Fatalf("distance out of range for %s/%s: %.4f", a, b, ab)
			}
		}
	}
}

func TestDistanceBetween_MissingPoint(t *testing.T) {
	p := &Point{Lng: 1, Lat: 1}
	if _, ok := DistanceBetween(p, nil); ok {
		t.Fatalf("expected ok=false when second point is missing")
	}
	if _, ok := DistanceBetween(nil, p); ok {
		t.Fatalf("expected ok=false when first point is missing")
	}
	if km, ok := DistanceBetween(p, p); !ok || km != 0 {
		t.Fatalf("expected zero distance with ok=true, got %.4f ok=%v", km, ok)
	}
}

func TestPointCoordinatesRoundTrip(t *testing.T) {
	p := FromCoordinates([2]float64{77.5946, 12.9716})
	if p.Lng != 77.5946 || p.Lat != 12.9716 {
		t.Fatalf("unexpected point: %+v", p)
	}
	if got := p.Coordinates(); got != [2]float64{77.5946, 12.9716} {
		t.Fatalf("unexpected coordinates: %v", got)
	}
}

func TestRadiusContains(t *testing.T) {
	center := FromCoordinates([2]float64{72.8397, 19.0269})
	if got := center.Coordinates(); got != [2]float64{72.8397, 19.0269} {
		t.Fatalf("coordinates should keep lng/lat order, got %v", got)
	}

	north := Point{Lng: center.Lng, Lat: center.Lat + 0.1}
	edge := DistanceKm(center, north)

	tests := []struct {
		name string
		km   float64
		want bool
	}{
		{name: "inside", km: edge + 1, want: true},
		{name: "boundary", km: edge, want: true},
		{name: "outside", km: edge - 1, want: false},
	}
	for _, tc := range tests {
		if got := (Radius{Center: center, Km: tc.km}).Contains(north); got != tc.want {
			t.Fatalf("%s: Contains = %v, want %v", tc.name, got, tc.want)
		}
	}
}
