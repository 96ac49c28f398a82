package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/refinery/codedom"
)

// TreeOptions controls which elements RenderTree shows.
type TreeOptions struct {
	// Usings includes import declarations under their owner
	Usings bool
	// MaxDepth stops descending below this depth; zero means unlimited
	MaxDepth int
}

// BuildTree converts an element subtree into pterm tree nodes.
func BuildTree(e codedom.Element, opts TreeOptions) pterm.TreeNode {
	return buildNode(e, opts, 1)
}

func buildNode(e codedom.Element, opts TreeOptions, depth int) pterm.TreeNode {
	node := pterm.TreeNode{Text: Label(e)}
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return node
	}
	for _, child := range e.Children() {
		if child.Category() == codedom.CategoryUsing && !opts.Usings {
			continue
		}
		node.Children = append(node.Children, buildNode(child, opts, depth+1))
	}
	return node
}

// RenderTree writes the element tree rooted at e to w.
func RenderTree(w io.Writer, e codedom.Element, opts TreeOptions) error {
	out, err := pterm.DefaultTree.WithRoot(BuildTree(e, opts)).Srender()
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// Label is the one-line description of an element.
func Label(e codedom.Element) string {
	switch v := e.(type) {
	case *codedom.Namespace:
		return "namespace " + v.Name()
	case *codedom.Class:
		label := fmt.Sprintf("class %s%s", v.Name(), kindSuffix(v.Kind().String()))
		if base := v.Declaration().Inherits; base != nil {
			label += " : " + base.Name
		}
		if v.IsErrorDefinition {
			label += " [error]"
		}
		return label
	case *codedom.Interface:
		return "interface " + v.Name()
	case *codedom.Enum:
		if v.Flags {
			return "enum " + v.Name() + " [flags]"
		}
		return "enum " + v.Name()
	case *codedom.EnumOption:
		if wire := v.WireName(); wire != v.Name() {
			return fmt.Sprintf("%s = %q", v.Name(), wire)
		}
		return v.Name()
	case *codedom.Property:
		return fmt.Sprintf("%s %s%s", v.Name(), TypeLabel(v.Type), kindSuffix(v.Kind().String()))
	case *codedom.Method:
		params := make([]string, 0, len(v.Parameters()))
		for _, p := range v.Parameters() {
			params = append(params, p.Name()+" "+TypeLabel(p.Type))
		}
		label := fmt.Sprintf("%s(%s)", v.Name(), strings.Join(params, ", "))
		if ret := TypeLabel(v.ReturnType); ret != "" {
			label += " " + ret
		}
		return label + kindSuffix(v.Kind().String())
	case *codedom.Parameter:
		return fmt.Sprintf("%s %s%s", v.Name(), TypeLabel(v.Type), kindSuffix(v.Kind().String()))
	case *codedom.Indexer:
		return fmt.Sprintf("[%s] %s", v.IndexTypeName(), TypeLabel(v.ReturnType))
	case *codedom.Using:
		if v.Alias != "" {
			return fmt.Sprintf("using %s as %s from %s", v.Symbol(), v.Alias, v.Source())
		}
		return fmt.Sprintf("using %s from %s", v.Symbol(), v.Source())
	default:
		return e.Category().String() + " " + e.Name()
	}
}

// TypeLabel renders a type slot in the short form of IR documents: "User[]"
// for collections, "integer!" for non-nullable slots, "Cat | Dog" for
// anonymous unions.
func TypeLabel(t codedom.TypeBase) string {
	if codedom.IsNil(t) {
		return ""
	}
	name := t.TypeName()
	if composed, ok := t.(*codedom.ComposedType); ok && name == "" {
		sep := " | "
		if composed.Kind() == codedom.Intersection {
			sep = " & "
		}
		members := make([]string, 0, len(composed.AllTypes()))
		for _, m := range composed.AllTypes() {
			members = append(members, TypeLabel(m))
		}
		name = strings.Join(members, sep)
	}
	traits := t.Traits()
	if traits.Collection != codedom.CollectionNone {
		name += "[]"
	}
	if !traits.Nullable {
		name += "!"
	}
	return name
}

func kindSuffix(kind string) string {
	if kind == "Custom" {
		return ""
	}
	return " <" + kind + ">"
}
