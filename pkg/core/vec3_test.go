package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"axis aligned", NewVec3(0, 0, 7)},
		{"diagonal", NewVec3(2, 2, -2)},
		{"tiny", NewVec3(1e-6, -3e-6, 2e-6)},
		{"large", NewVec3(1e6, 4e5, -9e5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length := tt.vector.Normalize().Length()
			if math.Abs(length-1) > 1e-12 {
				t.Errorf("Expected unit length, got %v", length)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	result := Vec3{}.Normalize()
	if result != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", result)
	}
}

func TestVec3_MixBoundaries(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 0, 0), NewVec3(0, 0, 1)},
		{NewVec3(0.3, 0.7, 0.1), NewVec3(0.9, 0.2, 0.4)},
		{NewVec3(-5, 12, 3.25), NewVec3(8, -1, 0.125)},
	}

	for _, p := range pairs {
		u, v := p[0], p[1]
		if got := u.Mix(v, 0); got != v {
			t.Errorf("Mix(%v, %v, 0) = %v, want %v", u, v, got, v)
		}
		if got := u.Mix(v, 1); got != u {
			t.Errorf("Mix(%v, %v, 1) = %v, want %v", u, v, got, u)
		}
	}
}

func TestVec3_MixMidpoint(t *testing.T) {
	result := NewVec3(1, 0, 0).Mix(NewVec3(0, 1, 0), 0.25)
	expected := NewVec3(0.25, 0.75, 0)

	if result.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_DistanceTo(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 6, 3)

	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if a.DistanceTo(b) != b.DistanceTo(a) {
		t.Error("Distance should be symmetric")
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		normal    Vec3
		expected  Vec3
	}{
		{"head on", NewVec3(0, 0, 1), NewVec3(0, 0, -1), NewVec3(0, 0, -1)},
		{"45 degrees", NewVec3(1, -1, 0).Normalize(), NewVec3(0, 1, 0), NewVec3(1, 1, 0).Normalize()},
		{"grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.direction.Reflect(tt.normal)

			const tolerance = 1e-12
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if math.Abs(result.Length()-tt.direction.Length()) > tolerance {
				t.Errorf("Reflection should preserve length, got %v", result.Length())
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, 1))
	if p := ray.At(2.5); p != NewVec3(1, 1, 3.5) {
		t.Errorf("Expected (1, 1, 3.5), got %v", p)
	}
}
