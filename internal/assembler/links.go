// Package assembler wraps entities in HAL-style representations carrying navigation links.
// Links are built from the static route templates below.
package assembler

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

const (
	APIPrefix     = "/api/v1"
	RolesPath     = APIPrefix + "/roles"
	UsuariosPath  = APIPrefix + "/usuarios"
	RelSelf       = "self"
	RelActualizar = "actualizar"
	RelEliminar   = "eliminar"
)

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

// BaseURL is the scheme and host the client used to reach the service.
func BaseURL(c echo.Context) string {
	return fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
}

func resourceURL(baseURL, collectionPath string, id int64) string {
	return fmt.Sprintf("%s%s/%d", baseURL, collectionPath, id)
}

func entityLinks(baseURL, collectionPath, collectionRel string, id int64) Links {
	self := resourceURL(baseURL, collectionPath, id)
	return Links{
		RelSelf:       {Href: self},
		collectionRel: {Href: baseURL + collectionPath},
		RelActualizar: {Href: self},
		RelEliminar:   {Href: self},
	}
}

// CollectionModel mirrors the HAL collection shape: items under _embedded, a self link to the list.
type CollectionModel[T any] struct {
	Embedded map[string][]T `json:"_embedded,omitempty"`
	Links    Links          `json:"_links"`
}

func newCollection[T any](baseURL, collectionPath, embeddedRel string, items []T) CollectionModel[T] {
	model := CollectionModel[T]{
		Links: Links{RelSelf: {Href: baseURL + collectionPath}},
	}
	if len(items) > 0 {
		model.Embedded = map[string][]T{embeddedRel: items}
	}
	return model
}
