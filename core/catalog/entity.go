package catalog

import (
	"fmt"
	"strings"
)

// Ref names an entity by kind and qualified natural key.
type Ref struct {
	Kind Kind
	Key  string
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.Key)
}

// ParentRef points an entity at a parent record.
type ParentRef struct {
	// Kind is the kind of the parent.
	Kind Kind `yaml:"kind" toml:"kind"`

	// Key is the qualified natural key of the parent.
	Key string `yaml:"key" toml:"key"`

	// Field is the payload field receiving the parent id (e.g. "parent", "site").
	Field string `yaml:"field" toml:"field"`

	// Scope narrows the lookup of the child to this parent (<field>_id=<id>).
	Scope bool `yaml:"scope,omitempty" toml:"scope,omitempty"`

	// Mutable marks the relationship as correctable on existing records.
	// A drifted mutable field is patched; other fields are left alone.
	Mutable bool `yaml:"mutable,omitempty" toml:"mutable,omitempty"`
}

// Ref returns the reference to the parent entity.
func (p ParentRef) Ref() Ref {
	return Ref{Kind: p.Kind, Key: p.Key}
}

// Entity is one inventory record to ensure exists.
type Entity struct {
	// Kind is the record type.
	Kind Kind `yaml:"kind" toml:"kind"`

	// Key is the natural key, sent in the kind's key field.
	Key string `yaml:"key" toml:"key"`

	// Attributes holds kind-specific scalar fields (name, description, color...).
	Attributes map[string]any `yaml:"attributes,omitempty" toml:"attributes,omitempty"`

	// Parents lists the parent references in declaration order.
	Parents []ParentRef `yaml:"parents,omitempty" toml:"parents,omitempty"`
}

// Ref returns the catalog identity of the entity.
// Scoped entities are qualified by their scope parents' keys.
func (e Entity) Ref() Ref {
	return Ref{Kind: e.Kind, Key: e.QualifiedKey()}
}

// QualifiedKey returns "<scope>/<key>" for scoped entities and Key otherwise.
func (e Entity) QualifiedKey() string {
	var parts []string
	for _, p := range e.Parents {
		if p.Scope {
			parts = append(parts, p.Key)
		}
	}
	if len(parts) == 0 {
		return e.Key
	}
	return strings.Join(append(parts, e.Key), "/")
}

// LocalKey strips any scope qualification from a key.
func LocalKey(key string) string {
	_, local, _ := SplitKey(key)
	return local
}

// SplitKey splits a qualified key at its last '/' into the scope parent's
// key and the local key. ok is false for unqualified keys.
func SplitKey(key string) (scope, local string, ok bool) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key, false
	}
	return key[:i], key[i+1:], true
}

// Name returns the display name attribute, falling back to the key.
func (e Entity) Name() string {
	if name, ok := e.Attributes["name"].(string); ok && name != "" {
		return name
	}
	return e.Key
}

// Mutable returns the parent refs flagged as correctable.
func (e Entity) Mutable() []ParentRef {
	var out []ParentRef
	for _, p := range e.Parents {
		if p.Mutable {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the entity is well formed.
func (e Entity) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("entity %q: unknown kind %q", e.Key, e.Kind)
	}
	if strings.TrimSpace(e.Key) == "" {
		return fmt.Errorf("%s entity: empty natural key", e.Kind)
	}
	if strings.Contains(e.Key, "/") {
		return fmt.Errorf("%s: natural key must not contain '/'", e.Ref())
	}
	seen := make(map[string]struct{}, len(e.Parents))
	for _, p := range e.Parents {
		if !p.Kind.Valid() {
			return fmt.Errorf("%s: parent %q has unknown kind %q", e.Ref(), p.Key, p.Kind)
		}
		if strings.TrimSpace(p.Key) == "" {
			return fmt.Errorf("%s: parent of kind %s has empty key", e.Ref(), p.Kind)
		}
		if _, _, qualified := SplitKey(p.Key); qualified {
			if _, _, scoped := p.Kind.Scope(); !scoped {
				return fmt.Errorf("%s: parent %s is qualified but %s keys are not scoped", e.Ref(), p.Ref(), p.Kind)
			}
		}
		if p.Field == "" {
			return fmt.Errorf("%s: parent %s has no field", e.Ref(), p.Ref())
		}
		if _, dup := seen[p.Field]; dup {
			return fmt.Errorf("%s: field %q referenced twice", e.Ref(), p.Field)
		}
		seen[p.Field] = struct{}{}
	}
	return nil
}
