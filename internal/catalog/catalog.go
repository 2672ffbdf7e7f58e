// Package catalog holds the static, read-only vendor catalog used to pre-fill SLA fields.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed vendors.json
var defaultCatalog []byte

// AllServices is the service selection that applies no SLA.
const AllServices = "todos"

var (
	ErrUnknownVendor  = errors.New("unknown vendor")
	ErrUnknownService = errors.New("unknown service")
)

// SLA holds the agreed response time per priority as duration strings.
type SLA struct {
	Critical string `yaml:"critica" json:"critica"`
	High     string `yaml:"alta" json:"alta"`
	Medium   string `yaml:"media" json:"media"`
	Low      string `yaml:"baja" json:"baja"`
}

// Service is a named vendor service with its SLA.
type Service struct {
	Name string `yaml:"-" json:"name"`
	SLA  SLA    `yaml:"sla" json:"sla"`
}

// Vendor is a catalog entry. Services keep the order they appear in the source.
type Vendor struct {
	Name     string    `json:"name"`
	Services []Service `json:"services"`
}

// UnmarshalYAML decodes the "servicios" mapping into an ordered slice.
func (v *Vendor) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name     string    `yaml:"nombre"`
		Services yaml.Node `yaml:"servicios"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v.Name = raw.Name
	v.Services = nil

	if raw.Services.Kind == 0 {
		return nil
	}
	if raw.Services.Kind != yaml.MappingNode {
		return fmt.Errorf("vendor %q: servicios must be a mapping", raw.Name)
	}
	for i := 0; i+1 < len(raw.Services.Content); i += 2 {
		svc := Service{Name: raw.Services.Content[i].Value}
		if err := raw.Services.Content[i+1].Decode(&svc); err != nil {
			return fmt.Errorf("vendor %q: service %q: %w", raw.Name, svc.Name, err)
		}
		v.Services = append(v.Services, svc)
	}
	return nil
}

// Service looks up a service by name.
func (v Vendor) Service(name string) (Service, bool) {
	for _, s := range v.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Catalog is loaded once at startup and never mutated afterwards.
type Catalog struct {
	vendors []Vendor
}

// Load reads a catalog file (JSON or YAML). An empty path loads the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded vendor catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog document: an ordered list of vendors.
func Parse(data []byte) (*Catalog, error) {
	var vendors []Vendor
	if err := yaml.Unmarshal(data, &vendors); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		if v.Name == "" {
			return nil, errors.New("parse catalog: vendor without nombre")
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("parse catalog: duplicate vendor %q", v.Name)
		}
		seen[v.Name] = true
	}
	return &Catalog{vendors: vendors}, nil
}

// Vendors returns the vendors in catalog order.
func (c *Catalog) Vendors() []Vendor {
	out := make([]Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

// Names returns vendor names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.vendors))
	for _, v := range c.vendors {
		names = append(names, v.Name)
	}
	return names
}

// Vendor looks up a vendor by exact name.
func (c *Catalog) Vendor(name string) (Vendor, error) {
	for _, v := range c.vendors {
		if v.Name == name {
			return v, nil
		}
	}
	return Vendor{}, fmt.Errorf("%w: %q", ErrUnknownVendor, name)
}

// SLA returns the agreed SLA for a vendor's service.
func (c *Catalog) SLA(vendor, service string) (SLA, error) {
	v, err := c.Vendor(vendor)
	if err != nil {
		return SLA{}, err
	}
	s, ok := v.Service(service)
	if !ok {
		return SLA{}, fmt.Errorf("%w: %q for vendor %q", ErrUnknownService, service, vendor)
	}
	return s.SLA, nil
}
