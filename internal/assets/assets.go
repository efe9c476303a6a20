package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed scenes/*.json
var sceneFS embed.FS

// DefaultScene is the scene the game loads on startup
const DefaultScene = "arena"

var ErrSceneNotFound = errors.New("assets: scene not found")

// Color name mapping for scene files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// KnownColor reports whether name maps to a color
func KnownColor(name string) bool {
	_, ok := colorByName[name]
	return ok
}

// Scene returns the raw JSON of an embedded scene by name, without extension
func Scene(name string) ([]byte, error) {
	data, err := sceneFS.ReadFile(path.Join("scenes", name+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q (embedded: %s)", ErrSceneNotFound, name, strings.Join(Scenes(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", name, err)
	}
	return data, nil
}

// Scenes lists the embedded scene names, sorted
func Scenes() []string {
	entries, err := sceneFS.ReadDir("scenes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
