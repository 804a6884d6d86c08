package handlers

import (
	"errors"
	"net/http"

	"dayplanner/internal/adapter/http/middleware"
	"dayplanner/internal/core/domain"
	"dayplanner/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// clientErrors maps domain errors caused by the request to their status and
// message key.
var clientErrors = []struct {
	err    error
	status int
	msgKey string
}{
	{domain.ErrInvalidDate, http.StatusBadRequest, apierrors.MsgInvalidDate},
	{domain.ErrInvalidTimestamp, http.StatusBadRequest, apierrors.MsgInvalidTimestamp},
	{domain.ErrInvalidInterval, http.StatusBadRequest, apierrors.MsgInvalidInterval},
	{domain.ErrInvalidTitle, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrTimeBlockNotFound, http.StatusNotFound, apierrors.MsgTimeBlockNotFound},
	{domain.ErrOverlappingInterval, http.StatusConflict, apierrors.MsgOverlappingInterval},
}

func abortWithError(c *gin.Context, status int, msgKey string) {
	c.AbortWithStatusJSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// respondError writes the response for err. Errors not caused by the request
// are logged and reported with failKey as a server error.
func respondError(c *gin.Context, err error, failKey string, fields ...zap.Field) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			abortWithError(c, ce.status, ce.msgKey)
			return
		}
	}

	_ = c.Error(err)
	zap.L().Error(apierrors.GetTransErrorMsg(failKey, "en"), append(fields, zap.Error(err))...)
	abortWithError(c, http.StatusInternalServerError, failKey)
}
