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

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService) {
	c := UserController{
		service: service,
	}

	g.GET("/usuarios", c.ListAll)
	g.GET("/usuarios/:id", c.GetByID)
	g.GET("/usuarios/nombre/:nombre", c.GetByName)
	g.GET("/usuarios/rut/:rut", c.GetByRut)
	g.POST("/usuarios", c.Create)
	g.PUT("/usuarios/:id", c.Update)
	g.DELETE("/usuarios/:id", c.Delete)
}

func (c *UserController) ListAll(e echo.Context) error {
	users, err := c.service.ListAll(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, assembler.NewUserAssembler(assembler.BaseURL(e)).ToCollectionModel(users))
}

func (c *UserController) GetByID(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	user, found, err := c.service.FindByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	return e.JSON(http.StatusOK, assembler.NewUserAssembler(assembler.BaseURL(e)).ToModel(user))
}

func (c *UserController) GetByName(e echo.Context) error {
	user, found, err := c.service.FindByName(e.Request().Context(), pathParam(e, "nombre"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	return e.JSON(http.StatusOK, assembler.NewUserAssembler(assembler.BaseURL(e)).ToModel(user))
}

func (c *UserController) GetByRut(e echo.Context) error {
	user, found, err := c.service.FindByRut(e.Request().Context(), pathParam(e, "rut"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}
	if !found {
		return e.NoContent(http.StatusNotFound)
	}

	return e.JSON(http.StatusOK, assembler.NewUserAssembler(assembler.BaseURL(e)).ToModel(user))
}

func (c *UserController) Create(e echo.Context) error {
	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UserController.Create").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if err := payload.Validate(); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	user, err := c.service.Save(e.Request().Context(), payload.ToDomain(0))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	a := assembler.NewUserAssembler(assembler.BaseURL(e))
	return response.WriteResource(e, http.StatusCreated, a.SelfURL(user.ID), a.ToModel(user))
}

func (c *UserController) Update(e echo.Context) error {
	id, err := parseID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	payload := dto.UserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UserController.Update").Msg("")
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

	user, err := c.service.Save(ctx, payload.ToDomain(id))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, assembler.NewUserAssembler(assembler.BaseURL(e)).ToModel(user))
}

func (c *UserController) Delete(e echo.Context) error {
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
