// Package openapi provides reflective OpenAPI 3.0 specification generation.
// Following ADR-004: Reflective OpenAPI Generation
package openapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// =============================================================================
// Generator
// =============================================================================

// Generator produces OpenAPI 3.0 specifications by reflecting on the
// registered operations and listings.
type Generator struct {
	title       string
	version     string
	description string
	servers     []string
	operations  []OperationInfo
	listings    []ListingInfo
	mu          sync.RWMutex
	cachedSpec  *openapi3.T
}

// OperationInfo describes one POST operation under /api/v1/ops.
type OperationInfo struct {
	Name     string      // Operation name (e.g., "createServerGroup")
	Summary  string      // One-line summary for the spec
	Request  interface{} // Request body model for schema extraction
	Response interface{} // Response body model for schema extraction
}

// ListingInfo describes one GET collection under /api/v1.
type ListingInfo struct {
	Name     string      // Collection name (e.g., "accounts")
	Summary  string      // One-line summary for the spec
	Response interface{} // Response body model for schema extraction
}

// Option configures the generator.
type Option func(*Generator)

// WithTitle sets the API title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithVersion sets the API version.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithDescription sets the API description.
func WithDescription(description string) Option {
	return func(g *Generator) {
		g.description = description
	}
}

// WithServer adds a server URL.
func WithServer(url string) Option {
	return func(g *Generator) {
		g.servers = append(g.servers, url)
	}
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		title:       "Stevedore API",
		version:     "1.0.0",
		description: "Deployment description validation API",
		servers:     []string{"http://localhost:7002"},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RegisterOperation adds an operation endpoint to the spec.
func (g *Generator) RegisterOperation(info OperationInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.operations = append(g.operations, info)
	g.cachedSpec = nil // Invalidate cache
}

// RegisterListing adds a collection endpoint to the spec.
func (g *Generator) RegisterListing(info ListingInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listings = append(g.listings, info)
	g.cachedSpec = nil // Invalidate cache
}

// Generate produces the complete OpenAPI 3.0 specification.
func (g *Generator) Generate() *openapi3.T {
	g.mu.RLock()
	if g.cachedSpec != nil {
		spec := g.cachedSpec
		g.mu.RUnlock()
		return spec
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check after acquiring write lock
	if g.cachedSpec != nil {
		return g.cachedSpec
	}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.title,
			Version:     g.version,
			Description: g.description,
		},
		Servers: make(openapi3.Servers, 0, len(g.servers)),
		Paths:   &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
	}

	for _, url := range g.servers {
		spec.Servers = append(spec.Servers, &openapi3.Server{URL: url})
	}

	g.addErrorSchema(spec)

	for _, op := range g.operations {
		g.addOperationToSpec(spec, op)
	}
	for _, l := range g.listings {
		g.addListingToSpec(spec, l)
	}

	g.cachedSpec = spec
	return spec
}

// Handler returns an HTTP handler that serves the OpenAPI specification.
func (g *Generator) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := g.Generate()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(spec); err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
		}
	}
}

// =============================================================================
// Path Generation
// =============================================================================

// addErrorSchema adds the shared error envelope schema to the spec.
func (g *Generator) addErrorSchema(spec *openapi3.T) {
	spec.Components.Schemas["Error"] = &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"error": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
				"code": &openapi3.SchemaRef{
					Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
				},
			},
			Required: []string{"error"},
		},
	}
}

// addOperationToSpec adds the path and schemas for one operation.
func (g *Generator) addOperationToSpec(spec *openapi3.T, op OperationInfo) {
	schemaName := capitalize(op.Name)
	spec.Components.Schemas[schemaName+"Request"] = g.extractSchema(op.Request)
	spec.Components.Schemas[schemaName+"Response"] = g.extractSchema(op.Response)

	responses := &openapi3.Responses{}
	responses.Set("200", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Description is valid").
			WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/" + schemaName + "Response"}),
	})
	responses.Set("422", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Description was rejected; findings list the violations").
			WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/" + schemaName + "Response"}),
	})
	responses.Set("400", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Request body is not valid JSON").
			WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Error"}),
	})

	spec.Paths.Set("/api/v1/ops/"+op.Name, &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: op.Name,
			Summary:     op.Summary,
			Tags:        []string{"Operations"},
			RequestBody: &openapi3.RequestBodyRef{
				Value: &openapi3.RequestBody{
					Required: true,
					Content: openapi3.Content{
						"application/json": &openapi3.MediaType{
							Schema: &openapi3.SchemaRef{
								Ref: "#/components/schemas/" + schemaName + "Request",
							},
						},
					},
				},
			},
			Responses: responses,
		},
	})
}

// addListingToSpec adds the path and schema for one collection listing.
func (g *Generator) addListingToSpec(spec *openapi3.T, l ListingInfo) {
	schemaName := capitalize(l.Name)
	spec.Components.Schemas[schemaName+"Response"] = g.extractSchema(l.Response)

	responses := &openapi3.Responses{}
	responses.Set("200", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Collection contents").
			WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/" + schemaName + "Response"}),
	})

	spec.Paths.Set("/api/v1/"+l.Name, &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "list" + schemaName,
			Summary:     l.Summary,
			Tags:        []string{schemaName},
			Responses:   responses,
		},
	})
}

// =============================================================================
// Schema Generation
// =============================================================================

// extractSchema extracts an OpenAPI schema from a Go struct.
func (g *Generator) extractSchema(model interface{}) *openapi3.SchemaRef {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schema := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Properties: make(openapi3.Schemas),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		// Get JSON tag
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		// Parse JSON tag for name
		name := field.Name
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
		}

		// Convert Go type to OpenAPI type
		propSchema := g.schemaForType(field.Type)
		if propSchema != nil {
			schema.Properties[name] = propSchema
		}
	}

	return &openapi3.SchemaRef{Value: schema}
}

// schemaForType converts a Go type to an OpenAPI schema.
func (g *Generator) schemaForType(t reflect.Type) *openapi3.SchemaRef {
	switch t.Kind() {
	case reflect.String:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int32"}}

	case reflect.Int64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}, Format: "int64"}}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}}}

	case reflect.Float32:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "float"}}

	case reflect.Float64:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"number"}, Format: "double"}}

	case reflect.Bool:
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}}

	case reflect.Slice, reflect.Array:
		elemSchema := g.schemaForType(t.Elem())
		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:  &openapi3.Types{"array"},
				Items: elemSchema,
			},
		}

	case reflect.Map:
		valueSchema := g.schemaForType(t.Elem())
		return &openapi3.SchemaRef{
			Value: &openapi3.Schema{
				Type:                 &openapi3.Types{"object"},
				AdditionalProperties: openapi3.AdditionalProperties{Schema: valueSchema},
			},
		}

	case reflect.Ptr:
		schema := g.schemaForType(t.Elem())
		if schema != nil && schema.Value != nil {
			schema.Value.Nullable = true
		}
		return schema

	case reflect.Struct:
		// Handle time.Time specially
		if t == reflect.TypeOf(time.Time{}) {
			return &openapi3.SchemaRef{
				Value: &openapi3.Schema{Type: &openapi3.Types{"string"}, Format: "date-time"},
			}
		}
		// For other structs, extract recursively
		return g.extractSchema(reflect.New(t).Interface())

	default:
		// Unknown type, return generic object
		return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"object"}}}
	}
}

// =============================================================================
// Helpers
// =============================================================================

// capitalize returns the string with the first letter capitalized.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
