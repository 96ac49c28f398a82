package codedom

// Indexer is the by-id accessor of a request builder, standing for a
// parameterized path segment. IsLegacy marks the backward-compatible form kept
// next to a canonical indexer with a different id type.
type Indexer struct {
	element
	Description    string
	ReturnType     TypeBase
	IsLegacy       bool
	PathSegment    string
	IndexParameter *Parameter
}

// NewIndexer returns an unattached indexer.
func NewIndexer(name string, index *Parameter, returns TypeBase) *Indexer {
	ix := &Indexer{ReturnType: returns}
	ix.name = name
	ix.SetIndexParameter(index)
	return ix
}

func (ix *Indexer) Category() Category { return CategoryIndexer }

func (ix *Indexer) Children() []Element {
	if ix.IndexParameter == nil {
		return nil
	}
	return []Element{ix.IndexParameter}
}

// SetIndexParameter replaces the id parameter.
func (ix *Indexer) SetIndexParameter(p *Parameter) {
	if p != nil {
		p.setParent(ix)
	}
	ix.IndexParameter = p
}

// IndexTypeName is the type name of the id parameter.
func (ix *Indexer) IndexTypeName() string {
	if ix.IndexParameter == nil || IsNil(ix.IndexParameter.Type) {
		return ""
	}
	return ix.IndexParameter.Type.TypeName()
}
