package schema

import "fmt"

// Document is a parsed schema file. Lists keep the order in which targets,
// properties and rules were written, which is the order they are registered
// and evaluated in.
type Document struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Target groups the properties of one validation target.
type Target struct {
	Name       string     `json:"name" yaml:"name"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// Property lists the rules bound to one property of a target.
type Property struct {
	Name  string     `json:"name" yaml:"name"`
	Rules []RuleSpec `json:"rules" yaml:"rules"`
}

// RuleSpec declares one rule. Params are positional and follow the
// registration function of the kind; Options is the named alternative for
// kinds configured by an options struct.
type RuleSpec struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Params  []any          `json:"params,omitempty" yaml:"params,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Groups  []string       `json:"groups,omitempty" yaml:"groups,omitempty"`
	Message string         `json:"message,omitempty" yaml:"message,omitempty"`
	Always  bool           `json:"always,omitempty" yaml:"always,omitempty"`
}

// rulePath names a rule inside a document for error messages, e.g. User.email[1].
func rulePath(target, property string, index int) string {
	return fmt.Sprintf("%s.%s[%d]", target, property, index)
}

// Target returns the named target, if declared.
func (d *Document) Target(name string) (Target, bool) {
	if d == nil {
		return Target{}, false
	}
	for _, t := range d.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// RuleCount returns the number of rules declared across all targets.
func (d *Document) RuleCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, t := range d.Targets {
		for _, p := range t.Properties {
			n += len(p.Rules)
		}
	}
	return n
}
