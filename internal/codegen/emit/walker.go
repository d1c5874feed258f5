package emit

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okra-platform/argsgen/internal/schema"
)

// CollectionPolicy selects how generic collections round-trip
type CollectionPolicy string

const (
	// CollectionLift stores a single item and wraps it into a one-element sequence on assignment
	CollectionLift CollectionPolicy = "lift"
	// CollectionCopy stores the whole sequence and assigns it as is
	CollectionCopy CollectionPolicy = "copy"
)

// ParseCollectionPolicy parses a policy name; empty means CollectionLift
func ParseCollectionPolicy(s string) (CollectionPolicy, error) {
	switch CollectionPolicy(s) {
	case "", CollectionLift:
		return CollectionLift, nil
	case CollectionCopy:
		return CollectionCopy, nil
	default:
		return "", fmt.Errorf("unknown collection policy %q (want %q or %q)", s, CollectionLift, CollectionCopy)
	}
}

// Option configures a Walker
type Option func(*Walker)

// WithExclusions skips the arguments with the given long names everywhere
func WithExclusions(names ...string) Option {
	return func(w *Walker) {
		for _, name := range names {
			w.exclude[name] = struct{}{}
		}
	}
}

// WithCollectionPolicy sets the generic collection policy
func WithCollectionPolicy(policy CollectionPolicy) Option {
	return func(w *Walker) {
		if policy != "" {
			w.policy = policy
		}
	}
}

// WithLogger sets the logger used to report skipped and lifted arguments
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger.With().Str("component", "walker").Logger()
	}
}

// Walker resolves argument schemas into members. It holds no per-pass state
// and may be shared by concurrent passes.
type Walker struct {
	syntax  Syntax
	exclude map[string]struct{}
	policy  CollectionPolicy
	logger  zerolog.Logger
}

// NewWalker creates a walker for the given syntax
func NewWalker(syntax Syntax, opts ...Option) *Walker {
	w := &Walker{
		syntax:  syntax,
		exclude: make(map[string]struct{}),
		policy:  CollectionLift,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Excluded reports whether the long name is in the exclusion set
func (w *Walker) Excluded(longName string) bool {
	_, ok := w.exclude[longName]
	return ok
}

// Policy returns the generic collection policy
func (w *Walker) Policy() CollectionPolicy {
	return w.policy
}

// Walk resolves args and calls emit for every member. Nothing is emitted
// when any argument fails to resolve.
func (w *Walker) Walk(component string, args []schema.Argument, suffix string, emit EmitFunc) error {
	members, err := w.Resolve(component, args, suffix)
	if err != nil {
		return err
	}

	Visit(members, emit)
	return nil
}

// Resolve classifies and renders every visible, non-excluded argument in
// declaration order. Subcomponent groups carry their nested members.
func (w *Walker) Resolve(component string, args []schema.Argument, suffix string) ([]Member, error) {
	return w.resolve(component, args, suffix, make(map[string]string))
}

func (w *Walker) resolve(component string, args []schema.Argument, suffix string, seen map[string]string) ([]Member, error) {
	members := make([]Member, 0, len(args))

	for _, arg := range args {
		if w.Excluded(arg.LongName) {
			w.logger.Debug().Str("target", component).Str("argument", arg.LongName).Msg("argument excluded")
			continue
		}
		if arg.IsHidden {
			w.logger.Debug().Str("target", component).Str("argument", arg.LongName).Msg("hidden argument skipped")
			continue
		}

		m, err := w.member(component, arg, suffix, seen)
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	return members, nil
}

func (w *Walker) member(component string, arg schema.Argument, suffix string, seen map[string]string) (Member, error) {
	shape, err := Classify(arg)
	if err != nil {
		var ce *ClassificationError
		if errors.As(err, &ce) {
			ce.Component = component
		}
		return Member{}, err
	}

	m := Member{
		Arg:    arg,
		Shape:  shape,
		Name:   arg.LongName + suffix,
		Suffix: suffix,
		IsBool: arg.ItemType.Kind == schema.KindBool,
		Help:   arg.HelpText,
	}

	if shape == ShapeSubcomponentGroup {
		m.Type = arg.NestedArgsType
		if m.Type == "" {
			m.Type = schema.DefaultArgsType(arg.ItemType.Name)
		}
		m.NestedSuffix = suffix + Capitalize(arg.LongName)

		nested, err := w.resolve(component, arg.Nested, m.NestedSuffix, seen)
		if err != nil {
			return Member{}, err
		}
		m.Nested = nested
		return m, nil
	}

	if owner, taken := seen[m.Name]; taken {
		return Member{}, &ClassificationError{
			Component: component,
			Argument:  arg.LongName,
			Reason:    fmt.Sprintf("rendered name %q collides with argument %s", m.Name, owner),
		}
	}
	seen[m.Name] = arg.LongName

	var memberType, elemType schema.Type
	switch shape {
	case ShapeColumnCollection:
		memberType = schema.SequenceOf(schema.Scalar(schema.KindString))
		elemType = arg.ItemType
	case ShapeStringCollection:
		memberType = arg.FieldType
	case ShapeGenericCollection:
		elemType = arg.ItemType
		if w.policy == CollectionLift {
			memberType = arg.ItemType
			m.Lifted = true
			w.logger.Warn().
				Str("target", component).
				Str("argument", arg.LongName).
				Msg("collection argument round-trips a single value")
		} else {
			memberType = schema.SequenceOf(arg.ItemType)
		}
	default:
		memberType = arg.ItemType
	}

	types := w.syntax.Types()

	typeName, ok := types.Map(memberType)
	if !ok {
		return Member{}, &UnmappedTypeError{Component: component, Argument: arg.LongName, Type: memberType}
	}
	m.Type = typeName

	if !elemType.IsZero() {
		elemName, ok := types.Map(elemType)
		if !ok {
			return Member{}, &UnmappedTypeError{Component: component, Argument: arg.LongName, Type: elemType}
		}
		m.ElemType = elemName
	}

	m.Default, err = w.renderDefault(component, m, memberType)
	if err != nil {
		return Member{}, err
	}

	return m, nil
}

func (w *Walker) renderDefault(component string, m Member, t schema.Type) (string, error) {
	v := m.Arg.Default
	if v == nil {
		return "", nil
	}

	if m.Lifted {
		if list, ok := v.([]any); ok {
			switch len(list) {
			case 0:
				return "", nil
			case 1:
				v = list[0]
			default:
				return "", &ClassificationError{
					Component: component,
					Argument:  m.Arg.LongName,
					Reason:    fmt.Sprintf("default holds %d values but the collection round-trips a single value", len(list)),
				}
			}
		}
	}

	lit, ok := Literal(w.syntax, t, v)
	if !ok {
		return "", &UnmappedTypeError{
			Component: component,
			Argument:  m.Arg.LongName,
			Type:      t,
			Reason:    fmt.Sprintf("default %v has no literal form", v),
		}
	}

	return lit, nil
}
