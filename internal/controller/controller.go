package controller

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/libreriasansebastian/usuarios-service/pkg/errs"
)

func parseID(e echo.Context) (int64, error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrInvalidID
	}
	return id, nil
}

// pathParam returns the decoded value of a path segment. echo routes on URL.RawPath when it
// is set and then hands back escaped params; otherwise they are already decoded.
func pathParam(e echo.Context, name string) string {
	value := e.Param(name)
	if e.Request().URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
