package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "order-intake/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error answers with the status of an HTTPError anywhere in err's chain.
// Any other error is a validation failure (400). 5xx errors never leak
// their message.
func Error(c *gin.Context, err error) {
	var he *pkgErrors.HTTPError
	if !errors.As(err, &he) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   err.Error(),
		})
		return
	}

	if he.StatusCode >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	c.JSON(he.StatusCode, Resp{
		ErrorCode: he.Code,
		Message:   he.Message,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, _ error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	abort(c, pkgErrors.ErrUnauthorized)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	abort(c, pkgErrors.ErrTooManyRequests)
}

func abort(c *gin.Context, he *pkgErrors.HTTPError) {
	c.AbortWithStatusJSON(he.StatusCode, Resp{
		ErrorCode: he.Code,
		Message:   he.Message,
	})
}
