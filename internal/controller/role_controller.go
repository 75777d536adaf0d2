package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/libreriasansebastian/usuarios-service/internal/assembler"
	"github.com/libreriasansebastian/usuarios-service/internal/dto"
	"github.com/libreriasansebastian/usuarios-service/internal/service"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
	"github.com/libreriasansebastian/usuarios-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type RoleController struct {
	service service.RoleService
}

func CreateRoleController(g *echo.Group, service service.RoleService) {
	c := RoleController{
		service: service,
	}

	g.GET("/roles", c.ListAll)
	g.GET("/roles/:id", c.GetByID)
	g.GET("/roles/nombre/:nombre", c.GetByName)
	g.POST("/roles", c.Create)
	g.PUT("/roles/:id", c.Update)
	g.DELETE("/roles/:id", c.Delete)
}

func (c *RoleController) ListAll(e echo.Context) error {
	roles, err := c.service.ListAll(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, assembler.NewRoleAssembler(assembler.BaseURL(e)).ToCollectionModel(roles))
}

func (c *RoleController) GetByID(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	role, found, err := c.service.FindByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	return e.JSON(http.StatusOK, assembler.NewRoleAssembler(assembler.BaseURL(e)).ToModel(role))
}

func (c *RoleController) GetByName(e echo.Context) error {
	role, found, err := c.service.FindByName(e.Request().Context(), pathParam(e, "nombre"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	return e.JSON(http.StatusOK, assembler.NewRoleAssembler(assembler.BaseURL(e)).ToModel(role))
}

func (c *RoleController) Create(e echo.Context) error {
	payload := dto.RoleRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "RoleController.Create").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if err := payload.Validate(); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	role, err := c.service.Save(e.Request().Context(), payload.ToDomain(0))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	a := assembler.NewRoleAssembler(assembler.BaseURL(e))
	return response.WriteResource(e, http.StatusCreated, a.SelfURL(role.ID), a.ToModel(role))
}

func (c *RoleController) Update(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.RoleRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "RoleController.Update").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if err := payload.Validate(); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	ctx := e.Request().Context()
	_, found, err := c.service.FindByID(ctx, id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	role, err := c.service.Save(ctx, payload.ToDomain(id))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, assembler.NewRoleAssembler(assembler.BaseURL(e)).ToModel(role))
}

func (c *RoleController) Delete(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	ctx := e.Request().Context()
	_, found, err := c.service.FindByID(ctx, id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	if err := c.service.Delete(ctx, id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}
