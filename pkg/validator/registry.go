package validator

import "slices"

// Registry maps targets to their ordered descriptors. It is produced by
// Builder.Build, never changes afterwards and is safe for concurrent use.
type Registry struct {
	targets []string
	rules   map[string][]Descriptor
}

// RulesFor returns the target's descriptors selected for groups, in
// registration order. Unknown targets yield an empty result.
func (r *Registry) RulesFor(target string, groups ...string) []Descriptor {
	if r == nil {
		return nil
	}

	var selected []Descriptor
	for _, d := range r.rules[target] {
		if d.Selected(groups...) {
			selected = append(selected, d.clone())
		}
	}
	return selected
}

// RulesForProperty is RulesFor narrowed to a single property.
func (r *Registry) RulesForProperty(target, property string, groups ...string) []Descriptor {
	if r == nil {
		return nil
	}

	var selected []Descriptor
	for _, d := range r.rules[target] {
		if d.Property == property && d.Selected(groups...) {
			selected = append(selected, d.clone())
		}
	}
	return selected
}

// Targets lists registered targets in the order they were first seen.
func (r *Registry) Targets() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.targets)
}

// Properties lists the target's properties in the order they were first seen.
func (r *Registry) Properties(target string) []string {
	if r == nil {
		return nil
	}

	var props []string
	for _, d := range r.rules[target] {
		if !slices.Contains(props, d.Property) {
			props = append(props, d.Property)
		}
	}
	return props
}

// Has reports whether any descriptor was registered for target.
func (r *Registry) Has(target string) bool {
	if r == nil {
		return false
	}
	return len(r.rules[target]) > 0
}

// Len returns the total number of descriptors.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, rules := range r.rules {
		n += len(rules)
	}
	return n
}
