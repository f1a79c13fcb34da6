// Package params holds the tunable-parameter registry: the built-in
// descriptor table, override-file application and origin-group
// selection described in the parameter registry component.
package params

import (
	"fmt"
	"sort"
)

// Group selects which origin tag SPSA is allowed to update.
type Group string

const (
	GroupBoth Group = "both"
	GroupInfo Group = "info"
	GroupTC   Group = "tc"
)

// Origin tags for the two built-in descriptor groups.
const (
	OriginInfo = "info"
	OriginTC   = "tc"
)

// Descriptor is one tunable parameter's static metadata.
type Descriptor struct {
	Name    string
	Lo, Hi  float64
	Default float64
	CEnd    float64
	REnd    float64
	Origin  string
	Update  bool
}

// Registry is the loaded, immutable-after-load set of descriptors,
// keyed by name.
type Registry map[string]Descriptor

// ConfigError reports a non-fatal problem found while loading the
// registry or an override file: an unknown override name, a duplicate
// descriptor name, or an override file that could not be read or
// parsed. Callers warn and drop the offending entry or file.
type ConfigError struct {
	Kind string // "unknown-override" | "duplicate-name" | "unreadable-override"
	Name string
	File string
	Err  error // underlying I/O or parse error, for "unreadable-override"
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case "unknown-override":
		return fmt.Sprintf("params: override file %s: unknown parameter %q", e.File, e.Name)
	case "duplicate-name":
		return fmt.Sprintf("params: duplicate parameter name %q across origin groups", e.Name)
	case "unreadable-override":
		return fmt.Sprintf("params: override file %s: %v", e.File, e.Err)
	default:
		return fmt.Sprintf("params: config error (%s) for %q", e.Kind, e.Name)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load builds the merged registry from the built-in descriptor table,
// applying per-group overrides and the target-group selector. Unknown
// override names and duplicate built-in names are reported through
// warn (never nil in production use: callers pass a function that
// logs to the process logger) and otherwise skipped; Load itself never
// fails.
func Load(overrides map[string]map[string]float64, target Group, warn func(error)) Registry {
	if warn == nil {
		warn = func(error) {}
	}

	reg := make(Registry, len(infoParams)+len(tcParams))
	addGroup(reg, infoParams, OriginInfo, warn)
	addGroup(reg, tcParams, OriginTC, warn)

	switch target {
	case GroupInfo:
		setUpdateForOrigin(reg, OriginTC, false)
	case GroupTC:
		setUpdateForOrigin(reg, OriginInfo, false)
	case GroupBoth:
		// leave as-is
	}

	for file, ov := range overrides {
		applyOverride(reg, file, ov, warn)
	}

	return reg
}

func addGroup(reg Registry, src map[string]Descriptor, origin string, warn func(error)) {
	for name, d := range src {
		if _, exists := reg[name]; exists {
			warn(&ConfigError{Kind: "duplicate-name", Name: name})
		}
		d.Name = name
		d.Origin = origin
		d.Update = true
		reg[name] = d
	}
}

func setUpdateForOrigin(reg Registry, origin string, update bool) {
	for name, d := range reg {
		if d.Origin == origin {
			d.Update = update
			reg[name] = d
		}
	}
}

// applyOverride pins each named parameter to the supplied value and
// marks it fixed. Names absent from the registry are reported and
// dropped; Load continues without them.
func applyOverride(reg Registry, file string, values map[string]float64, warn func(error)) {
	for name, val := range values {
		d, ok := reg[name]
		if !ok {
			warn(&ConfigError{Kind: "unknown-override", Name: name, File: file})
			continue
		}
		d.Default = val
		d.Update = false
		reg[name] = d
	}
}

// UpdatingNames returns the names of every descriptor with Update set,
// in a stable (sorted) order.
func (r Registry) UpdatingNames() []string {
	names := make([]string, 0, len(r))
	for name, d := range r {
		if d.Update {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns every descriptor name in the registry, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clip clamps v into the descriptor's [Lo, Hi] range.
func (d Descriptor) Clip(v float64) float64 {
	if v < d.Lo {
		return d.Lo
	}
	if v > d.Hi {
		return d.Hi
	}
	return v
}
