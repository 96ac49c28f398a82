package codedom

import "strings"

// DiscriminatorMapping maps one discriminator value to a concrete subtype.
type DiscriminatorMapping struct {
	Value string
	Type  *TypeRef
}

// Discriminator names the property selecting the concrete subtype at
// deserialization time and maps its values to subtypes. Values compare
// case-insensitively; insertion order is preserved.
type Discriminator struct {
	PropertyName string
	mappings     []DiscriminatorMapping
}

// Add maps value to t, replacing an existing mapping for the same value.
func (d *Discriminator) Add(value string, t *TypeRef) {
	for i, m := range d.mappings {
		if strings.EqualFold(m.Value, value) {
			d.mappings[i].Type = t
			return
		}
	}
	d.mappings = append(d.mappings, DiscriminatorMapping{Value: value, Type: t})
}

// Get returns the subtype mapped to value.
func (d *Discriminator) Get(value string) (*TypeRef, bool) {
	for _, m := range d.mappings {
		if strings.EqualFold(m.Value, value) {
			return m.Type, true
		}
	}
	return nil, false
}

// Remove deletes the mapping for value.
func (d *Discriminator) Remove(value string) bool {
	for i, m := range d.mappings {
		if strings.EqualFold(m.Value, value) {
			d.mappings = append(d.mappings[:i:i], d.mappings[i+1:]...)
			return true
		}
	}
	return false
}

// Mappings returns a snapshot in insertion order.
func (d *Discriminator) Mappings() []DiscriminatorMapping {
	out := make([]DiscriminatorMapping, len(d.mappings))
	copy(out, d.mappings)
	return out
}

func (d *Discriminator) Len() int { return len(d.mappings) }

// Clone copies the mapping table; the subtype references are shared.
func (d *Discriminator) Clone() *Discriminator {
	return &Discriminator{PropertyName: d.PropertyName, mappings: d.Mappings()}
}
