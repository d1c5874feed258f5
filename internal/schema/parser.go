package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wundergraph/graphql-go-tools/v2/pkg/ast"
	"github.com/wundergraph/graphql-go-tools/v2/pkg/astparser"
)

// ParseSchema parses a component catalog written in GraphQL SDL and resolves it
func ParseSchema(input string) (*Catalog, error) {
	doc, err := ParseDocument(input)
	if err != nil {
		return nil, err
	}

	return Build(doc)
}

// ParseDocument parses a GraphQL SDL catalog (after preprocessing) into an unresolved Document
func ParseDocument(input string) (*Document, error) {
	preprocessed := PreprocessGraphQL(input)

	gql, report := astparser.ParseGraphqlDocumentString(preprocessed)
	if report.HasErrors() {
		return nil, fmt.Errorf("failed to parse GraphQL: %v", report)
	}

	out := &Document{
		Enums:         []EnumDef{},
		Objects:       []string{},
		Subcomponents: []ComponentDef{},
		Components:    []ComponentDef{},
	}

	for i := range gql.RootNodes {
		node := &gql.RootNodes[i]
		switch node.Kind {
		case ast.NodeKindEnumTypeDefinition:
			out.Enums = append(out.Enums, parseEnumType(&gql, node.Ref))
		case ast.NodeKindScalarTypeDefinition:
			name := gql.Input.ByteSliceString(gql.ScalarTypeDefinitions[node.Ref].Name)
			if name != ColumnTypeName {
				out.Objects = append(out.Objects, name)
			}
		case ast.NodeKindObjectTypeDefinition:
			out.Objects = append(out.Objects, gql.Input.ByteSliceString(gql.ObjectTypeDefinitions[node.Ref].Name))
		case ast.NodeKindInputObjectTypeDefinition:
			if err := parseInputObject(&gql, node.Ref, out); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func parseEnumType(doc *ast.Document, ref int) EnumDef {
	enumDef := doc.EnumTypeDefinitions[ref]

	enum := EnumDef{
		Name:   doc.Input.ByteSliceString(enumDef.Name),
		Values: []string{},
	}

	for _, valueRef := range enumDef.EnumValuesDefinition.Refs {
		valueDef := doc.EnumValueDefinitions[valueRef]
		enum.Values = append(enum.Values, doc.Input.ByteSliceString(valueDef.EnumValue))
	}

	return enum
}

func parseInputObject(doc *ast.Document, ref int, out *Document) error {
	typeDef := doc.InputObjectTypeDefinitions[ref]
	typeName := doc.Input.ByteSliceString(typeDef.Name)

	var (
		name    string
		isSub   bool
		isPlain bool
	)
	switch {
	case strings.HasPrefix(typeName, componentPrefix):
		name = strings.TrimPrefix(typeName, componentPrefix)
	case strings.HasPrefix(typeName, subcomponentPrefix):
		name = strings.TrimPrefix(typeName, subcomponentPrefix)
		isSub = true
	default:
		isPlain = true
	}

	// Plain input types are object references, not components
	if isPlain {
		out.Objects = append(out.Objects, typeName)
		return nil
	}

	def := ComponentDef{
		Name:      name,
		Help:      getDescription(doc, typeDef.Description),
		Arguments: []ArgumentDef{},
	}

	for _, directive := range parseDirectives(doc, typeDef.Directives) {
		switch directive.name {
		case "args":
			def.Args = directive.args["type"]
		case "entrypoint":
			def.EntryPoint = directive.args["name"]
		}
	}

	for _, fieldRef := range typeDef.InputFieldsDefinition.Refs {
		arg, err := parseArgument(doc, fieldRef)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		def.Arguments = append(def.Arguments, arg)
	}

	if isSub {
		out.Subcomponents = append(out.Subcomponents, def)
	} else {
		out.Components = append(out.Components, def)
	}

	return nil
}

func parseArgument(doc *ast.Document, ref int) (ArgumentDef, error) {
	valueDef := doc.InputValueDefinitions[ref]

	typeStr, _ := parseType(doc, valueDef.Type)
	arg := ArgumentDef{
		Name: doc.Input.ByteSliceString(valueDef.Name),
		Type: typeStr,
		Help: getDescription(doc, valueDef.Description),
	}

	for _, directive := range parseDirectives(doc, valueDef.Directives) {
		switch directive.name {
		case "hidden":
			arg.Hidden = true
		case "field":
			arg.Field = directive.args["type"]
		case "collection":
			collection := directive.args["value"] != "false"
			arg.Collection = &collection
		}
	}

	if valueDef.DefaultValue.IsDefined {
		v, err := parseLiteral(doc, valueDef.DefaultValue.Value)
		if err != nil {
			return ArgumentDef{}, fmt.Errorf("default of %s: %w", arg.Name, err)
		}
		arg.Default = v
	}

	return arg, nil
}

// parseType returns the textual form of a type reference and whether it is non-null
func parseType(doc *ast.Document, typeRef int) (string, bool) {
	required := false
	currentRef := typeRef

	if doc.Types[currentRef].TypeKind == ast.TypeKindNonNull {
		required = true
		currentRef = doc.Types[currentRef].OfType
	}

	if doc.Types[currentRef].TypeKind == ast.TypeKindList {
		innerType, _ := parseType(doc, doc.Types[currentRef].OfType)
		return "[" + innerType + "]", required
	}

	if doc.Types[currentRef].TypeKind == ast.TypeKindNamed {
		return doc.Input.ByteSliceString(doc.Types[currentRef].Name), required
	}

	return "Unknown", required
}

type directive struct {
	name string
	args map[string]string
}

func parseDirectives(doc *ast.Document, directives ast.DirectiveList) []directive {
	result := []directive{}

	for _, directiveRef := range directives.Refs {
		d := doc.Directives[directiveRef]
		result = append(result, directive{
			name: doc.Input.ByteSliceString(d.Name),
			args: parseDirectiveArgs(doc, d),
		})
	}

	return result
}

func parseDirectiveArgs(doc *ast.Document, d ast.Directive) map[string]string {
	args := make(map[string]string)

	for _, argRef := range d.Arguments.Refs {
		arg := doc.Arguments[argRef]
		value, err := parseLiteral(doc, doc.ArgumentValue(argRef))
		if err != nil || value == nil {
			continue
		}
		args[doc.Input.ByteSliceString(arg.Name)] = fmt.Sprint(value)
	}

	return args
}

// parseLiteral converts a GraphQL value into a plain Go value
func parseLiteral(doc *ast.Document, value ast.Value) (any, error) {
	switch value.Kind {
	case ast.ValueKindString:
		return doc.StringValueContentString(value.Ref), nil

	case ast.ValueKindEnum:
		return doc.Input.ByteSliceString(doc.EnumValues[value.Ref].Name), nil

	case ast.ValueKindBoolean:
		return bool(doc.BooleanValues[value.Ref]), nil

	case ast.ValueKindInteger:
		return int64(doc.IntValueAsInt(value.Ref)), nil

	case ast.ValueKindFloat:
		// Round-trip through the shortest float32 text so 0.1 stays 0.1
		f32 := doc.FloatValueAsFloat32(value.Ref)
		f, err := strconv.ParseFloat(strconv.FormatFloat(float64(f32), 'g', -1, 32), 64)
		if err != nil {
			return nil, err
		}
		return f, nil

	case ast.ValueKindNull:
		return nil, nil

	case ast.ValueKindList:
		list := doc.ListValues[value.Ref]
		items := make([]any, 0, len(list.Refs))
		for _, ref := range list.Refs {
			item, err := parseLiteral(doc, doc.Values[ref])
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	return nil, fmt.Errorf("unsupported literal kind %v", value.Kind)
}

func getDescription(doc *ast.Document, desc ast.Description) string {
	if !desc.IsDefined {
		return ""
	}

	return strings.TrimSpace(doc.Input.ByteSliceString(desc.Content))
}
