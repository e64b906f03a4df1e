package geom

import "math"

type Vector struct {
	x, y, z float64
}

func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }
func (v Vector) Z() float64 { return v.z }

func (v Vector) IsZero() bool { return v.x == 0 && v.y == 0 && v.z == 0 }

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v Vector) Mul(k float64) Vector {
	return Vector{v.x * k, v.y * k, v.z * k}
}

// WithY returns a copy of v at height y.
func (v Vector) WithY(y float64) Vector {
	return Vector{v.x, y, v.z}
}

func Distance(from, to Vector) float64 {
	return from.Sub(to).Magnitude()
}

// Heading returns the unit vector in the ground plane for a yaw given in
// degrees. Yaw 0 faces -Z.
func Heading(yaw float64) Vector {
	rad := yaw * math.Pi / 180
	return Vector{math.Sin(rad), 0, -math.Cos(rad)}
}
