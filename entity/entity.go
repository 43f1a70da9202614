// Package entity holds the physical and logical record for every object
// in the world. Entities are plain data plus one derived operation
// (gravitational acceleration); all mutation happens in the game core.
package entity

import (
	"math"

	"gravityduel/shape"
	"gravityduel/vmath"
)

// Transform places an entity in 3D space
type Transform struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    float64
}

// TransformAt returns an unrotated, unit-scale transform at position
func TransformAt(position vmath.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: vmath.QuatIdentity(),
		Scale:    1.0,
	}
}

// Renderer is the opaque rendering collaborator attached to an entity.
// The core only holds the handle; it never inspects it.
type Renderer interface {
	Render(e *Entity)
}

// Entity is any object in the simulated world. The optional sub-records
// act as a union of roles: planets carry mass and a collision shape,
// ships mass, a shape, and a Ship record, missiles only a trail. The
// role constructors below are the only sanctioned combinations.
type Entity struct {
	Transform      Transform
	Mass           float64
	CollisionShape *shape.Shape
	Renderer       Renderer
	MissileTrail   *MissileTrail
	Ship           *Ship
}

// New returns a bare massless entity at position
func New(position vmath.Vec3) *Entity {
	return &Entity{Transform: TransformAt(position)}
}

// NewPlanet returns a static attractor with the given mass and shape
func NewPlanet(position vmath.Vec3, mass float64, s *shape.Shape) *Entity {
	e := New(position)
	e.Mass = mass
	e.CollisionShape = s
	return e
}

// NewShip returns a player craft with the given mass and collision
// shape. Craft mass pulls missiles exactly like planet mass does.
func NewShip(position vmath.Vec3, playerID int, mass float64, s *shape.Shape) *Entity {
	e := New(position)
	e.Mass = mass
	e.CollisionShape = s
	e.Ship = &Ship{PlayerID: playerID, State: ShipActive}
	return e
}

// NewMissile returns a projectile entity. Missiles carry no mass and no
// collision shape: they neither attract nor block other rays.
func NewMissile(playerID int, position, velocity vmath.Vec3, timeToLive float64) *Entity {
	e := New(position)
	e.MissileTrail = NewMissileTrail(playerID, position, velocity, timeToLive)
	return e
}

// Position is shorthand for the transform position
func (e *Entity) Position() vmath.Vec3 {
	return e.Transform.Position
}

// GravityAt returns the acceleration this entity exerts on a test point.
// The magnitude scales with the SQUARE of the distance, not its inverse
// square: the published gameplay constant is tuned for this model, so it
// must not be corrected to physical gravity.
func (e *Entity) GravityAt(point vmath.Vec3, gravitationalConstant float64) vmath.Vec3 {
	difference := e.Transform.Position.Sub(point)
	strength := difference.MagSq() * e.Mass * gravitationalConstant
	return difference.Normalize().Scale(strength)
}

// CollisionIso maps the 3D transform onto the collision plane: the XY
// position plus the planar heading of the rotated X axis.
func (e *Entity) CollisionIso() shape.Iso2 {
	rotated := e.Transform.Rotation.Rotate(vmath.V3(1, 0, 0))
	return shape.Iso2{
		Pos: e.Transform.Position.XY(),
		Rot: math.Atan2(rotated.Y, rotated.X),
	}
}

// RayTimeToImpact returns the earliest impact time of the ray against
// this entity's shape, or ok=false when shapeless or missed
func (e *Entity) RayTimeToImpact(ray shape.Ray, maxTime float64, solid bool) (float64, bool) {
	if e.CollisionShape == nil {
		return 0, false
	}
	return e.CollisionShape.TimeOfImpact(e.CollisionIso(), ray, maxTime, solid)
}
