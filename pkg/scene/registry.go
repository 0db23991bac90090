package scene

import (
	"fmt"
	"sort"
)

// Info describes a built-in scene for listings
type Info struct {
	Name        string
	Description string
}

type builder struct {
	describe string
	build    func(seed int64) *Scene
}

// Seed only affects scenes with randomized content; the rest ignore it
var builders = map[string]builder{
	"simple": {
		describe: "Three spheres over a yellow ground sphere",
		build:    func(int64) *Scene { return NewSimpleScene() },
	},
	"demo-spheres": {
		describe: "Glass, diffuse and fuzzy metal spheres with defocus blur",
		build:    func(int64) *Scene { return NewDemoSpheres() },
	},
	"cover-spheres": {
		describe: "Field of random small spheres around three large ones",
		build:    NewCoverSpheres,
	},
	"quads": {
		describe: "Five colored quads arranged around the view axis",
		build:    func(int64) *Scene { return NewQuads() },
	},
	"simple-light": {
		describe: "Sphere lit by a rectangular area light",
		build:    func(int64) *Scene { return NewSimpleLight() },
	},
	"cornell-box": {
		describe: "Cornell box with a mirrored box and a diffuse box",
		build:    func(int64) *Scene { return NewCornellBox() },
	},
	"hello-triangle": {
		describe: "Single triangle shaded by its UV coordinates",
		build:    func(int64) *Scene { return NewHelloTriangle() },
	},
}

// List returns all built-in scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(builders))
	for name, b := range builders {
		infos = append(infos, Info{Name: name, Description: b.describe})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Create builds a scene by name. The seed feeds scenes with randomized
// content so renders stay reproducible.
func Create(name string, seed int64) (*Scene, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (run 'scenes' for the list)", name)
	}
	return b.build(seed), nil
}
