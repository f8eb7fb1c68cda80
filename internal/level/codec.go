package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/puffball-game/puffball/internal/core"
)

// yamlHeader is the minimal subset shared by every format version, decoded
// first so the loader can reject unsupported versions before a full parse.
type yamlHeader struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// yamlLevel is the on-disk document structure for version 1 level files.
type yamlLevel struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	Size    yamlSize    `yaml:"size"`
	Start   yamlPoint   `yaml:"start"`
	Walls   []yamlWall  `yaml:"walls,omitempty"`
	Gems    []yamlPoint `yaml:"gems,omitempty"`
	Pumps   []yamlPoint `yaml:"pumps,omitempty"`
	Mines   []yamlPoint `yaml:"mines,omitempty"`
	Finish  *yamlPoint  `yaml:"finish,omitempty"`
}

type yamlSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlWall struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Texture int     `yaml:"texture,omitempty"`
}

func (p yamlPoint) vec() core.Vec2 {
	return core.V(p.X, p.Y)
}

func point(v core.Vec2) yamlPoint {
	return yamlPoint{X: v.X, Y: v.Y}
}

// Parse decodes a version 1 level document. The version field is checked
// before the document is interpreted; unsupported versions are load errors,
// per the hard precondition that play never starts on an invalid model.
func Parse(data []byte) (*Level, error) {
	var hdr yamlHeader
	if err := yaml.Unmarshal(data, &hdr); err != nil {
		return nil, fmt.Errorf("level: decode header: %w", err)
	}
	if hdr.Version != "" && hdr.Version != CurrentVersion {
		return nil, fmt.Errorf("level: unsupported level version %q", hdr.Version)
	}

	var doc yamlLevel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}

	lvl := &Level{
		Name:   doc.Name,
		Width:  doc.Size.W,
		Height: doc.Size.H,
		Start:  doc.Start.vec(),
	}
	if lvl.Width == 0 && lvl.Height == 0 {
		lvl.Width = DefaultWidth
		lvl.Height = DefaultHeight
	}

	for _, w := range doc.Walls {
		lvl.Walls = append(lvl.Walls, Wall{
			Box:     core.NewRect(w.X, w.Y, w.W, w.H),
			Texture: w.Texture,
		})
	}
	for _, g := range doc.Gems {
		lvl.Gems = append(lvl.Gems, Gem{Pos: g.vec()})
	}
	for _, p := range doc.Pumps {
		lvl.Pumps = append(lvl.Pumps, Pump{Pos: p.vec()})
	}
	for _, m := range doc.Mines {
		lvl.Mines = append(lvl.Mines, Mine{Pos: m.vec()})
	}
	if doc.Finish != nil {
		lvl.Finish = &Finish{Pos: doc.Finish.vec()}
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Encode serializes a level to its YAML document form.
func Encode(lvl *Level) ([]byte, error) {
	doc := yamlLevel{
		Name:    lvl.Name,
		Version: CurrentVersion,
		Size:    yamlSize{W: lvl.Width, H: lvl.Height},
		Start:   point(lvl.Start),
	}

	for _, w := range lvl.Walls {
		doc.Walls = append(doc.Walls, yamlWall{
			X: w.Box.X, Y: w.Box.Y, W: w.Box.W, H: w.Box.H,
			Texture: w.Texture,
		})
	}
	for _, g := range lvl.Gems {
		doc.Gems = append(doc.Gems, point(g.Pos))
	}
	for _, p := range lvl.Pumps {
		doc.Pumps = append(doc.Pumps, point(p.Pos))
	}
	for _, m := range lvl.Mines {
		doc.Mines = append(doc.Mines, point(m.Pos))
	}
	if lvl.Finish != nil {
		p := point(lvl.Finish.Pos)
		doc.Finish = &p
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("level: encode: %w", err)
	}
	return data, nil
}
