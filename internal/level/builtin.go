package level

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded levels shipped with the game, sorted by ID.
// The binary is playable with no level directory configured.
func Builtin() []*Level {
	entries, err := builtinFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("level: embedded levels unreadable: %v", err))
	}

	var levels []*Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("levels/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("level: embedded level %s unreadable: %v", e.Name(), err))
		}
		lvl, err := Parse(data)
		if err != nil {
			// Embedded levels are part of the build; failing to parse one
			// is a programmer error, not a runtime condition.
			panic(fmt.Sprintf("level: embedded level %s invalid: %v", e.Name(), err))
		}
		lvl.ID = idFromPath(e.Name())
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels
}

// Catalog returns the playable level set: built-ins plus, when dir is
// non-empty, everything loadable from that directory. Directory levels with
// an ID matching a built-in shadow it.
func Catalog(dir string) ([]*Level, error) {
	levels := Builtin()

	if dir == "" {
		return levels, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}
