package world

import (
	"encoding/json"
	"errors"
	"fmt"

	"fpsgame/internal/assets"
	"fpsgame/internal/components"
	"fpsgame/internal/config"
	"fpsgame/internal/engine"
	"fpsgame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrInvalidScene = errors.New("world: invalid scene")

// --- JSON types ---

type SceneDef struct {
	Name    string      `json:"name"`
	Gravity *[3]float32 `json:"gravity,omitempty"`
	Ground  GroundDef   `json:"ground"`
	Player  PlayerDef   `json:"player"`
	Objects []ObjectDef `json:"objects"`
}

type GroundDef struct {
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Friction *float32   `json:"friction,omitempty"`
	Color    string     `json:"color,omitempty"`
}

type PlayerDef struct {
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Mass     float32    `json:"mass,omitempty"`
	Friction *float32   `json:"friction,omitempty"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type string      `json:"type"`
	Size *[3]float32 `json:"size,omitempty"` // defaults to the standard crate
}

type sphereColliderDef struct {
	Type   string  `json:"type"`
	Radius float32 `json:"radius"`
}

type rigidbodyDef struct {
	Type        string  `json:"type"`
	Mass        float32  `json:"mass,omitempty"`
	Bounciness  *float32 `json:"bounciness,omitempty"`
	Friction    *float32 `json:"friction,omitempty"`
	UseGravity  *bool    `json:"useGravity,omitempty"`
	IsKinematic bool     `json:"isKinematic,omitempty"`
	IsStatic    bool     `json:"isStatic,omitempty"`
}

type rendererDef struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

type behaviourDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// ParseScene decodes and validates a scene file
func ParseScene(data []byte) (SceneDef, error) {
	var def SceneDef
	if err := json.Unmarshal(data, &def); err != nil {
		return SceneDef{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := def.Validate(); err != nil {
		return SceneDef{}, err
	}
	return def, nil
}

// LoadSceneDef parses one of the embedded scenes
func LoadSceneDef(name string) (SceneDef, error) {
	data, err := assets.Scene(name)
	if err != nil {
		return SceneDef{}, err
	}
	def, err := ParseScene(data)
	if err != nil {
		return SceneDef{}, fmt.Errorf("scene %q: %w", name, err)
	}
	return def, nil
}

// Validate checks sizes, masses and component types without building anything
func (d SceneDef) Validate() error {
	if !positive(d.Ground.Size) {
		return fmt.Errorf("%w: ground size must be positive, got %v", ErrInvalidScene, d.Ground.Size)
	}
	if !positive(d.Player.Size) {
		return fmt.Errorf("%w: player size must be positive, got %v", ErrInvalidScene, d.Player.Size)
	}
	if d.Player.Mass < 0 {
		return fmt.Errorf("%w: player mass must not be negative", ErrInvalidScene)
	}
	if negative(d.Ground.Friction) || negative(d.Player.Friction) {
		return fmt.Errorf("%w: friction must not be negative", ErrInvalidScene)
	}
	names := make(map[string]bool, len(d.Objects))
	for i, obj := range d.Objects {
		if obj.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		if names[obj.Name] {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidScene, obj.Name)
		}
		names[obj.Name] = true
		if _, err := obj.build(); err != nil {
			return err
		}
	}
	return nil
}

func positive(v [3]float32) bool {
	return v[0] > 0 && v[1] > 0 && v[2] > 0
}

func negative(v *float32) bool {
	return v != nil && *v < 0
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// eulerToQuaternion converts scene rotation in degrees
func eulerToQuaternion(r [3]float32) rl.Quaternion {
	return rl.QuaternionFromEuler(r[0]*rl.Deg2rad, r[1]*rl.Deg2rad, r[2]*rl.Deg2rad)
}

// --- Building ---

// prop is a scene object with its body, before it is attached anywhere
type prop struct {
	object *engine.GameObject
	body   *physics.Body
}

func (o ObjectDef) build() (prop, error) {
	g := engine.NewGameObject(o.Name)
	g.Tags = o.Tags
	g.Transform.Position = vec3(o.Position)
	g.Transform.Rotation = vec3(o.Rotation)
	g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}

	var (
		collider components.Collider
		rbDef    *rigidbodyDef
		hasColor bool
	)

	for _, raw := range o.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return prop{}, o.errorf("component: %w", err)
		}

		switch header.Type {
		case "BoxCollider":
			var def boxColliderDef
			if err := json.Unmarshal(raw, &def); err != nil {
				return prop{}, o.errorf("BoxCollider: %w", err)
			}
			size := rl.Vector3Scale(config.Box.HalfSize, 2)
			if def.Size != nil {
				if !positive(*def.Size) {
					return prop{}, o.errorf("BoxCollider size must be positive, got %v", *def.Size)
				}
				size = vec3(*def.Size)
			}
			col := components.NewBoxCollider(size)
			g.AddComponent(col)
			collider = col

		case "SphereCollider":
			var def sphereColliderDef
			if err := json.Unmarshal(raw, &def); err != nil {
				return prop{}, o.errorf("SphereCollider: %w", err)
			}
			if def.Radius <= 0 {
				return prop{}, o.errorf("SphereCollider radius must be positive, got %f", def.Radius)
			}
			col := components.NewSphereCollider(def.Radius)
			g.AddComponent(col)
			collider = col

		case "Rigidbody":
			var def rigidbodyDef
			if err := json.Unmarshal(raw, &def); err != nil {
				return prop{}, o.errorf("Rigidbody: %w", err)
			}
			if def.Mass < 0 {
				return prop{}, o.errorf("Rigidbody mass must not be negative")
			}
			if negative(def.Friction) || negative(def.Bounciness) {
				return prop{}, o.errorf("Rigidbody friction and bounciness must not be negative")
			}
			rbDef = &def

		case "Renderer":
			var def rendererDef
			if err := json.Unmarshal(raw, &def); err != nil {
				return prop{}, o.errorf("Renderer: %w", err)
			}
			if !assets.KnownColor(def.Color) {
				return prop{}, o.errorf("unknown color %q", def.Color)
			}
			g.AddComponent(components.NewMeshRenderer(assets.LookupColor(def.Color)))
			hasColor = true

		case "Behaviour":
			var def behaviourDef
			if err := json.Unmarshal(raw, &def); err != nil {
				return prop{}, o.errorf("Behaviour: %w", err)
			}
			c, err := engine.CreateBehaviour(def.Name, def.Props)
			if err != nil {
				return prop{}, o.errorf("%w", err)
			}
			g.AddComponent(c)

		default:
			return prop{}, o.errorf("unknown component type %q", header.Type)
		}
	}

	if collider == nil {
		return prop{}, o.errorf("needs a BoxCollider or SphereCollider")
	}
	if !hasColor {
		g.AddComponent(components.NewMeshRenderer(rl.Gray))
	}

	kind := physics.Static
	if rbDef != nil && !rbDef.IsStatic {
		kind = physics.Dynamic
		if rbDef.IsKinematic {
			kind = physics.Kinematic
		}
	}

	body := physics.NewBody(o.Name, kind, collider.Shape())
	body.Position = g.Transform.Position
	body.Orientation = eulerToQuaternion(o.Rotation)
	body.Mass = config.Box.Mass
	body.Friction = config.Box.Friction
	body.Bounce = config.Box.Bounce
	if rbDef != nil {
		if rbDef.Mass > 0 {
			body.Mass = rbDef.Mass
		}
		if rbDef.Friction != nil {
			body.Friction = *rbDef.Friction
		}
		if rbDef.Bounciness != nil {
			body.Bounce = *rbDef.Bounciness
		}
		if rbDef.UseGravity != nil && !*rbDef.UseGravity {
			body.GravityScale = 0
		}
	}
	g.AddComponent(components.NewRigidbody(body))

	return prop{object: g, body: body}, nil
}

func (o ObjectDef) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: object %q: %w", ErrInvalidScene, o.Name, fmt.Errorf(format, args...))
}
