package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlFiles lists all .yaml/.yml files in dir, sorted by name for
// deterministic load order.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func loadEach[T any](dir string, kind string) ([]*T, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*T, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d T
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing %s file %s: %w", kind, path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}

// LoadLocations reads all .yaml files in dir and parses each as a LocationDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed locations (may be empty slice) or a non-nil error.
func LoadLocations(dir string) ([]*LocationDef, error) {
	return loadEach[LocationDef](dir, "location")
}

// LoadJobs reads all .yaml files in dir and parses each as a JobDef.
func LoadJobs(dir string) ([]*JobDef, error) {
	return loadEach[JobDef](dir, "job")
}

// LoadShops reads all .yaml files in dir and parses each as a ShopDef.
func LoadShops(dir string) ([]*ShopDef, error) {
	return loadEach[ShopDef](dir, "shop")
}

// LoadItems reads all .yaml files in dir and parses each as an ItemDef.
func LoadItems(dir string) ([]*ItemDef, error) {
	return loadEach[ItemDef](dir, "item")
}

// LoadSkills reads all .yaml files in dir and parses each as a SkillDef.
func LoadSkills(dir string) ([]*SkillDef, error) {
	return loadEach[SkillDef](dir, "skill")
}

// LoadNPCs reads all .yaml files in dir and parses each as an NPCDef.
func LoadNPCs(dir string) ([]*NPCDef, error) {
	return loadEach[NPCDef](dir, "npc")
}

// Load reads a full catalog from the conventional content layout under
// root: locations/, jobs/, shops/, items/, skills/, npcs/. The npcs
// directory is optional.
//
// Precondition: root must be a readable directory containing the
// mandatory subdirectories.
// Postcondition: Returns a validated Registry or a non-nil error.
func Load(root string) (*Registry, error) {
	locations, err := LoadLocations(filepath.Join(root, "locations"))
	if err != nil {
		return nil, err
	}
	jobs, err := LoadJobs(filepath.Join(root, "jobs"))
	if err != nil {
		return nil, err
	}
	shops, err := LoadShops(filepath.Join(root, "shops"))
	if err != nil {
		return nil, err
	}
	items, err := LoadItems(filepath.Join(root, "items"))
	if err != nil {
		return nil, err
	}
	skills, err := LoadSkills(filepath.Join(root, "skills"))
	if err != nil {
		return nil, err
	}

	var npcs []*NPCDef
	npcDir := filepath.Join(root, "npcs")
	if info, statErr := os.Stat(npcDir); statErr == nil && info.IsDir() {
		npcs, err = LoadNPCs(npcDir)
		if err != nil {
			return nil, err
		}
	}

	reg := NewRegistry()
	for _, l := range locations {
		reg.RegisterLocation(l)
	}
	for _, j := range jobs {
		reg.RegisterJob(j)
	}
	for _, s := range shops {
		reg.RegisterShop(s)
	}
	for _, i := range items {
		reg.RegisterItem(i)
	}
	for _, s := range skills {
		reg.RegisterSkill(s)
	}
	for _, n := range npcs {
		reg.RegisterNPC(n)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog under %s: %w", root, err)
	}
	return reg, nil
}
