package itemtype

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/joshuapare/blockbag/pkg/types"
)

var (
	// ErrUnknownItem indicates a name that is not in the registry.
	ErrUnknownItem = errors.New("itemtype: unknown item")

	// ErrBadItem indicates an item string that is not "<item>[:<variant>]".
	ErrBadItem = errors.New("itemtype: malformed item")
)

// Info describes one item kind.
type Info struct {
	Kind        types.ItemKind
	Name        string
	Aliases     []string
	UsesVariant bool
}

// Registry maps item kinds to names and variant significance.
//
// A Registry is immutable after construction and safe for concurrent reads.
type Registry struct {
	byKind map[types.ItemKind]Info
	byName map[string]types.ItemKind
}

// New builds a registry from infos. Later entries replace earlier ones with
// the same kind.
func New(infos ...Info) *Registry {
	r := &Registry{
		byKind: make(map[types.ItemKind]Info, len(infos)),
		byName: make(map[string]types.ItemKind, len(infos)*2),
	}
	for _, info := range infos {
		r.byKind[info.Kind] = info
		r.byName[normalize(info.Name)] = info.Kind
		for _, alias := range info.Aliases {
			r.byName[normalize(alias)] = info.Kind
		}
	}
	return r
}

// UsesVariant implements types.VariantLookup. Unknown kinds do not use
// their variant.
func (r *Registry) UsesVariant(kind types.ItemKind) bool {
	return r.byKind[kind].UsesVariant
}

// Info returns the registry entry for kind.
func (r *Registry) Info(kind types.ItemKind) (Info, bool) {
	info, ok := r.byKind[kind]
	return info, ok
}

// Name returns the canonical name for kind, or its number when unknown.
func (r *Registry) Name(kind types.ItemKind) string {
	if info, ok := r.byKind[kind]; ok {
		return info.Name
	}
	return strconv.Itoa(int(kind))
}

// Lookup resolves a name or alias to its kind.
func (r *Registry) Lookup(name string) (types.ItemKind, bool) {
	kind, ok := r.byName[normalize(name)]
	return kind, ok
}

// Parse resolves an item string of the form "<item>[:<variant>]" where item is
// a registered name or a numeric kind.
func (r *Registry) Parse(text string) (types.ItemKind, types.Variant, error) {
	name, variantStr, hasVariant := strings.Cut(strings.TrimSpace(text), ":")
	if name == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadItem, text)
	}

	var kind types.ItemKind
	if n, err := strconv.ParseInt(name, 10, 32); err == nil {
		kind = types.ItemKind(n)
	} else if k, ok := r.Lookup(name); ok {
		kind = k
	} else {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}

	var variant types.Variant
	if hasVariant {
		v, err := strconv.ParseInt(variantStr, 10, 16)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: variant %q", ErrBadItem, variantStr)
		}
		variant = types.Variant(v)
	}
	return kind, variant, nil
}

// Format renders kind/variant the way Parse accepts it. The variant is only
// shown when it is significant or non-zero.
func (r *Registry) Format(kind types.ItemKind, variant types.Variant) string {
	name := r.Name(kind)
	if variant != 0 || r.UsesVariant(kind) {
		return fmt.Sprintf("%s:%d", name, variant)
	}
	return name
}

// All returns every entry ordered by kind.
func (r *Registry) All() []Info {
	out := make([]Info, 0, len(r.byKind))
	for _, info := range r.byKind {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// normalize folds case and maps separators to underscores.
// cases.Caser is stateful, so a fresh one is used per call.
func normalize(name string) string {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, folded)
}
