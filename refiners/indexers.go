package refiners

import (
	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/naming"
)

const defaultIndexParameterDescription = "Unique identifier of the item"

// IndexerOptions configures ReplaceIndexersByMethodsWithParameter.
type IndexerOptions struct {
	// ParameterNullable makes the id parameter optional and nullable.
	ParameterNullable bool
	// MethodName names the method replacing an indexer. Nil uses
	// "By" + the parameter name.
	MethodName func(ix *codedom.Indexer) string
}

func (o IndexerOptions) methodName(ix *codedom.Indexer) string {
	if o.MethodName != nil {
		return o.MethodName(ix)
	}
	return defaultIndexerMethodName(ix)
}

func defaultIndexerMethodName(ix *codedom.Indexer) string {
	param := "id"
	if ix.IndexParameter != nil {
		param = ix.IndexParameter.Name()
	}
	return "By" + naming.ToFirstCharacterUpper(naming.CleanupSymbolName(param))
}

// ReplaceIndexersByMethodsWithParameter replaces every indexer with an
// IndexerBackwardCompatibility method taking the id and returning the
// indexer's type. A legacy indexer next to a canonical one is suffixed with
// its id type name, or dropped when backward compatible members are excluded.
func ReplaceIndexersByMethodsWithParameter(opts IndexerOptions) PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		indexers := c.Indexers()
		if len(indexers) == 0 {
			return nil
		}
		canonical := c.Indexer()
		for _, ix := range indexers {
			paired := len(indexers) > 1 && ix != canonical
			c.RemoveIndexer(ix)
			if paired && run.Config.ExcludeBackwardCompatible {
				continue
			}
			name := opts.methodName(ix)
			if paired {
				name += naming.ToFirstCharacterUpper(naming.CleanupSymbolName(ix.IndexTypeName()))
			}
			c.AddMethod(indexerMethod(ix, name, opts.ParameterNullable))
		}
		return nil
	})
}

// SplitLegacyIndexers keeps the canonical indexer of a class as its only
// indexer and demotes legacy ones to backward compatible methods, for targets
// with indexer syntax.
func SplitLegacyIndexers(methodName func(ix *codedom.Indexer) string) PassFunc {
	if methodName == nil {
		methodName = defaultIndexerMethodName
	}
	return eachClass(func(run *Run, c *codedom.Class) error {
		indexers := c.Indexers()
		if len(indexers) < 2 {
			return nil
		}
		canonical := c.Indexer()
		for _, ix := range indexers {
			if ix == canonical {
				continue
			}
			c.RemoveIndexer(ix)
			if run.Config.ExcludeBackwardCompatible {
				continue
			}
			name := methodName(ix) + naming.ToFirstCharacterUpper(naming.CleanupSymbolName(ix.IndexTypeName()))
			c.AddMethod(indexerMethod(ix, name, false))
		}
		return nil
	})
}

// RemoveBackwardCompatibleIndexers drops legacy indexers that have a
// canonical counterpart.
func RemoveBackwardCompatibleIndexers() PassFunc {
	return eachClass(func(run *Run, c *codedom.Class) error {
		indexers := c.Indexers()
		if len(indexers) < 2 {
			return nil
		}
		canonical := c.Indexer()
		for _, ix := range indexers {
			if ix != canonical {
				c.RemoveIndexer(ix)
			}
		}
		return nil
	})
}

func indexerMethod(ix *codedom.Indexer, name string, nullable bool) *codedom.Method {
	m := codedom.NewMethod(name, codedom.MethodIndexerBackwardCompatibility)
	m.Description = ix.Description
	m.PathSegment = ix.PathSegment
	m.OriginalIndexer = ix
	if !codedom.IsNil(ix.ReturnType) {
		m.ReturnType = ix.ReturnType.CloneType()
		m.ReturnType.Traits().Nullable = false
	}

	var param *codedom.Parameter
	if ix.IndexParameter != nil {
		param = ix.IndexParameter.Clone()
		raw := param.Name()
		param.SetName(naming.ToFirstCharacterLower(naming.CleanupSymbolName(raw)))
		if param.SerializationName == "" && param.Name() != raw {
			param.SerializationName = raw
		}
	} else {
		param = codedom.NewParameter("id", codedom.ParameterPath, codedom.NewTypeRef("string"))
	}
	param.Optional = nullable
	if !codedom.IsNil(param.Type) {
		param.Type.Traits().Nullable = nullable
	}
	if param.Description == "" {
		param.Description = defaultIndexParameterDescription
	}
	m.AddParameter(param)
	return m
}
