package tariffwire

import (
	"sort"

	js "github.com/reoring/tariffwire/jsonschema"
)

// JSONSchemaDocument exports s as a root JSON Schema document. The result is
// a wire tree, so RenderTree prints properties in declaration order.
func JSONSchemaDocument[T any](s Schema[T]) (Object, error) {
	doc, err := s.JSONSchema()
	if err != nil {
		return Object{}, err
	}
	root := *doc
	root.Schema = js.Draft
	return schemaTree(&root), nil
}

func schemaTree(s *js.Schema) Object {
	var o Object
	add := func(k string, v any) { o.Members = append(o.Members, Member{Key: k, Value: v}) }
	if s.Schema != "" {
		add("$schema", s.Schema)
	}
	if s.Title != "" {
		add("title", s.Title)
	}
	if s.Description != "" {
		add("description", s.Description)
	}
	if s.Type != "" {
		add("type", s.Type)
	}
	if s.Format != "" {
		add("format", s.Format)
	}
	if s.Pattern != "" {
		add("pattern", s.Pattern)
	}
	if len(s.Enum) > 0 {
		add("enum", append([]any(nil), s.Enum...))
	}
	if s.Minimum != nil {
		add("minimum", *s.Minimum)
	}
	if s.Maximum != nil {
		add("maximum", *s.Maximum)
	}
	if len(s.Properties) > 0 {
		var props Object
		for _, k := range propertyKeys(s) {
			props.Members = append(props.Members, Member{Key: k, Value: schemaTree(s.Properties[k])})
		}
		add("properties", props)
	}
	if len(s.Required) > 0 {
		req := make([]any, len(s.Required))
		for i, r := range s.Required {
			req[i] = r
		}
		add("required", req)
	}
	if s.AdditionalProperties != nil {
		add("additionalProperties", *s.AdditionalProperties)
	}
	if s.Items != nil {
		add("items", schemaTree(s.Items))
	}
	if s.MinItems != nil {
		add("minItems", *s.MinItems)
	}
	if s.MaxItems != nil {
		add("maxItems", *s.MaxItems)
	}
	return o
}

// propertyKeys follows PropertyOrder, then appends any unlisted keys.
func propertyKeys(s *js.Schema) []string {
	keys := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, k := range s.PropertyOrder {
		if _, ok := s.Properties[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range s.Properties {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
