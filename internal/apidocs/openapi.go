// Package apidocs describes the REST API as an OpenAPI 3 document and serves it together
// with a Swagger UI page.
package apidocs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/libreriasansebastian/usuarios-service/internal/assembler"
)

const (
	Title       = "Librería San Sebastián - Servicio de Usuarios"
	Description = "API REST para la gestión de usuarios y Roles en la Librería San Sebastián"
	Version     = "1.0.0"

	tagRoles    = "Roles"
	tagUsuarios = "Usuarios"
)

type Options struct {
	ServicePort     string
	RemoteServerURL string
}

func schemaRef(name string, schema *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Ref: "#/components/schemas/" + name, Value: schema}
}

func roleSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("nombre", openapi3.NewStringSchema().WithMaxLength(50)).
		WithProperty("descripcion", openapi3.NewStringSchema().WithMaxLength(255).WithNullable())
	schema.Required = []string{"nombre"}
	return schema
}

func userSchema(rol *openapi3.SchemaRef) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema()).
		WithProperty("nombre", openapi3.NewStringSchema().WithMaxLength(100)).
		WithProperty("email", openapi3.NewStringSchema().WithMaxLength(100)).
		WithProperty("rut", openapi3.NewStringSchema().WithMaxLength(20)).
		WithPropertyRef("rol", rol)
	schema.Required = []string{"nombre", "email", "rut"}
	return schema
}

func errorSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())
	schema.Required = []string{"error"}
	return schema
}

func linkSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty("href", openapi3.NewStringSchema().WithFormat("uri"))
	schema.Required = []string{"href"}
	return schema
}

func linksSchema(link *openapi3.SchemaRef, rels ...string) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, rel := range rels {
		schema.WithPropertyRef(rel, link)
	}
	schema.Required = rels
	return schema
}

// modelSchema is the entity as returned by the API: its fields plus _links.
func modelSchema(entity *openapi3.Schema, links *openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for name, prop := range entity.Properties {
		schema.WithPropertyRef(name, prop)
	}
	schema.WithProperty("_links", links)
	schema.Required = append([]string{"_links"}, entity.Required...)
	return schema
}

// collectionSchema describes a list response. _embedded is absent when the list is empty.
func collectionSchema(embeddedRel string, model, link *openapi3.SchemaRef) *openapi3.Schema {
	items := openapi3.NewArraySchema()
	items.Items = model

	schema := openapi3.NewObjectSchema().
		WithProperty("_embedded", openapi3.NewObjectSchema().WithProperty(embeddedRel, items)).
		WithProperty("_links", linksSchema(link, assembler.RelSelf))
	schema.Required = []string{"_links"}
	return schema
}

func idParameter(resource string) *openapi3.ParameterRef {
	param := openapi3.NewPathParameter("id").
		WithSchema(openapi3.NewInt64Schema()).
		WithDescription(fmt.Sprintf("ID único del %s", resource))
	param.Example = 1
	return &openapi3.ParameterRef{Value: param}
}

func stringParameter(name, description string, example interface{}) *openapi3.ParameterRef {
	param := openapi3.NewPathParameter(name).
		WithSchema(openapi3.NewStringSchema()).
		WithDescription(description)
	param.Example = example
	return &openapi3.ParameterRef{Value: param}
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(schema)}
}

func emptyResponse(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description)}
}

func requestBody(description string, schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
		WithDescription(description).
		WithRequired(true).
		WithJSONSchemaRef(schema)}
}

func operation(tag, id, summary, description string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Tags = []string{tag}
	op.OperationID = id
	op.Summary = summary
	op.Description = description
	op.Responses = openapi3.Responses{}
	return op
}

type resource struct {
	tag      string
	path     string
	singular string
	plural   string
	schema   *openapi3.SchemaRef
	model    *openapi3.SchemaRef
	list     *openapi3.SchemaRef
}

func (r resource) paths(errRef *openapi3.SchemaRef) openapi3.Paths {
	status := func(code int) string { return fmt.Sprint(code) }

	list := operation(r.tag, "listar"+r.tag, "Listar todos los "+r.plural,
		"Obtiene una lista completa de todos los "+r.plural+" registrados en el sistema")
	list.Responses[status(http.StatusOK)] = jsonResponse("Lista de "+r.plural+" obtenida exitosamente", r.list)

	create := operation(r.tag, "crear"+r.tag, "Crear nuevo "+r.singular, "Registra un nuevo "+r.singular+" en el sistema")
	create.RequestBody = requestBody("Datos del "+r.singular+" a crear", r.schema)
	create.Responses[status(http.StatusCreated)] = jsonResponse(r.singular+" creado exitosamente", r.model)
	create.Responses[status(http.StatusBadRequest)] = jsonResponse("Datos de entrada inválidos", errRef)

	get := operation(r.tag, "obtener"+r.tag+"PorId", "Obtener "+r.singular+" por ID",
		"Busca y retorna un "+r.singular+" específico por su identificador único")
	get.Parameters = openapi3.Parameters{idParameter(r.singular)}
	get.Responses[status(http.StatusOK)] = jsonResponse(r.singular+" encontrado exitosamente", r.model)
	get.Responses[status(http.StatusNotFound)] = emptyResponse(r.singular + " no encontrado")

	update := operation(r.tag, "actualizar"+r.tag, "Actualizar "+r.singular, "Actualiza los datos de un "+r.singular+" existente")
	update.Parameters = openapi3.Parameters{idParameter(r.singular)}
	update.RequestBody = requestBody("Datos actualizados del "+r.singular, r.schema)
	update.Responses[status(http.StatusOK)] = jsonResponse(r.singular+" actualizado exitosamente", r.model)
	update.Responses[status(http.StatusBadRequest)] = jsonResponse("Datos de entrada inválidos", errRef)
	update.Responses[status(http.StatusNotFound)] = emptyResponse(r.singular + " no encontrado")

	remove := operation(r.tag, "eliminar"+r.tag, "Eliminar "+r.singular, "Elimina permanentemente un "+r.singular+" del sistema")
	remove.Parameters = openapi3.Parameters{idParameter(r.singular)}
	remove.Responses[status(http.StatusNoContent)] = emptyResponse(r.singular + " eliminado exitosamente")
	remove.Responses[status(http.StatusNotFound)] = emptyResponse(r.singular + " no encontrado")

	byName := operation(r.tag, "obtener"+r.tag+"PorNombre", "Obtener "+r.singular+" por nombre",
		"Busca y retorna un "+r.singular+" específico por su nombre")
	byName.Parameters = openapi3.Parameters{stringParameter("nombre", "Nombre del "+r.singular, "ADMIN")}
	byName.Responses[status(http.StatusOK)] = jsonResponse(r.singular+" encontrado exitosamente", r.model)
	byName.Responses[status(http.StatusNotFound)] = emptyResponse(r.singular + " no encontrado")

	return openapi3.Paths{
		r.path:                      &openapi3.PathItem{Get: list, Post: create},
		r.path + "/{id}":            &openapi3.PathItem{Get: get, Put: update, Delete: remove},
		r.path + "/nombre/{nombre}": &openapi3.PathItem{Get: byName},
	}
}

// NewDocument builds the API description and validates it.
func NewDocument(ctx context.Context, opts Options) (*openapi3.T, error) {
	schemas := openapi3.Schemas{}
	register := func(name string, schema *openapi3.Schema) *openapi3.SchemaRef {
		schemas[name] = openapi3.NewSchemaRef("", schema)
		return schemaRef(name, schema)
	}

	rol := register("Rol", roleSchema())
	usuario := register("Usuario", userSchema(rol))
	errRef := register("Error", errorSchema())
	link := register("Link", linkSchema())

	rolModel := register("RolModel", modelSchema(rol.Value,
		linksSchema(link, assembler.RelSelf, assembler.RelRoles, assembler.RelActualizar, assembler.RelEliminar)))
	usuarioModel := register("UsuarioModel", modelSchema(usuario.Value,
		linksSchema(link, assembler.RelSelf, assembler.RelUsuarios, assembler.RelActualizar, assembler.RelEliminar)))
	rolCollection := register("RolCollection", collectionSchema(assembler.EmbeddedRoles, rolModel, link))
	usuarioCollection := register("UsuarioCollection", collectionSchema(assembler.EmbeddedUsuarios, usuarioModel, link))

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Description: Description,
			Version:     Version,
			Contact: &openapi3.Contact{
				Name:  "Equipo de Desarrollo",
				Email: "desarrollo@libreriasansebastian.cl",
				URL:   "https://libreriasansebastian.cl",
			},
			License: &openapi3.License{
				Name: "MIT License",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: "http://localhost:" + opts.ServicePort, Description: "Servidor de desarrollo local"},
		},
		Tags: openapi3.Tags{
			&openapi3.Tag{Name: tagRoles, Description: "Operaciones relacionadas con la gestión de roles"},
			&openapi3.Tag{Name: tagUsuarios, Description: "Operaciones relacionadas con la gestión de usuarios"},
		},
		Paths: openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: schemas,
		},
	}
	if opts.RemoteServerURL != "" {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: opts.RemoteServerURL, Description: "Servidor de desarrollo remoto"})
	}

	roles := resource{
		tag:      tagRoles,
		path:     assembler.RolesPath,
		singular: "rol",
		plural:   "roles",
		schema:   rol,
		model:    rolModel,
		list:     rolCollection,
	}
	usuarios := resource{
		tag:      tagUsuarios,
		path:     assembler.UsuariosPath,
		singular: "usuario",
		plural:   "usuarios",
		schema:   usuario,
		model:    usuarioModel,
		list:     usuarioCollection,
	}

	for _, r := range []resource{roles, usuarios} {
		for path, item := range r.paths(errRef) {
			doc.Paths[path] = item
		}
	}

	byRut := operation(tagUsuarios, "obtenerUsuariosPorRut", "Obtener usuario por RUT", "Busca y retorna un usuario específico por su RUT")
	byRut.Parameters = openapi3.Parameters{stringParameter("rut", "RUT del usuario", "12345678-9")}
	byRut.Responses["200"] = jsonResponse("usuario encontrado exitosamente", usuarioModel)
	byRut.Responses["404"] = emptyResponse("usuario no encontrado")
	doc.Paths[assembler.UsuariosPath+"/rut/{rut}"] = &openapi3.PathItem{Get: byRut}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}
