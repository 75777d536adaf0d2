package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Message = message
	resp.Data = data

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	if statusCode == http.StatusNotFound {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Error: err.Error()})
}

// WriteResource writes a resource representation. A non-empty location is sent as the Location header.
func WriteResource(c echo.Context, statusCode int, location string, data interface{}) error {
	if location != "" {
		c.Response().Header().Set(echo.HeaderLocation, location)
	}

	return c.JSON(statusCode, data)
}

// HTTPErrorHandler renders framework errors (unknown routes, bad methods) with the same error body.
// Anything else, such as a recovered panic, is logged and reported as an internal server error.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := errs.ErrStatusInternalServer
	message := errs.ErrInternalServer.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "HTTPErrorHandler").Msg("")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Error: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
