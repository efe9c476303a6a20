package components

import (
	"fpsgame/internal/engine"
	"fpsgame/internal/physics"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) Shape() physics.Shape {
	return physics.Sphere(s.Radius)
}
