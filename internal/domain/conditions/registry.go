package conditions

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

//go:embed data/conditions.yaml
var embeddedData embed.FS

const embeddedPath = "data/conditions.yaml"

type registryFile struct {
	Conditions []Condition `yaml:"conditions"`
}

// Registry is the lookup table of known conditions, keyed by ID
type Registry struct {
	conditions map[ID]Condition
	order      []ID
}

// DefaultRegistry loads the conditions shipped with the bot
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(embeddedData, embeddedPath)
}

// LoadRegistry reads a YAML condition list from fsys
func LoadRegistry(fsys fs.FS, path string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read conditions %s: %w", path, err)
	}

	registry, err := ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("parse conditions %s: %w", path, err)
	}
	return registry, nil
}

// ParseRegistry builds a Registry from YAML
func ParseRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Conditions) == 0 {
		return nil, apperr.InvalidArgument("no conditions defined")
	}

	r := &Registry{
		conditions: make(map[ID]Condition, len(file.Conditions)),
		order:      make([]ID, 0, len(file.Conditions)),
	}

	for i, cond := range file.Conditions {
		cond.ID = ID(strings.TrimSpace(string(cond.ID)))
		if cond.ID == "" {
			return nil, apperr.InvalidArgumentf("condition %d: id is required", i)
		}
		if strings.TrimSpace(cond.Name) == "" {
			return nil, apperr.InvalidArgumentf("condition %s: name is required", cond.ID)
		}
		if _, exists := r.conditions[cond.ID]; exists {
			return nil, apperr.AlreadyExistsf("condition %s defined twice", cond.ID)
		}

		r.conditions[cond.ID] = cond
		r.order = append(r.order, cond.ID)
	}

	return r, nil
}

// LookupConditionByID returns a copy of the condition with the given id
func (r *Registry) LookupConditionByID(id ID) (*Condition, error) {
	cond, ok := r.conditions[id]
	if !ok {
		return nil, apperr.NotFoundf("condition %s not found", id).WithMeta("condition_id", string(id))
	}
	return &cond, nil
}

// List returns every condition in file order
func (r *Registry) List() []*Condition {
	out := make([]*Condition, 0, len(r.order))
	for _, id := range r.order {
		cond := r.conditions[id]
		out = append(out, &cond)
	}
	return out
}
