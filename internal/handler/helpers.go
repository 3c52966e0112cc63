package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apierror"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain error kinds onto HTTP status codes. Validation and
// field-lock failures are caller-correctable; persistence failures are not.
// Field and product ids travel in the envelope so the grid can highlight the
// exact cell that was rejected.
func respondError(c *gin.Context, err error) {
	var fe *apperr.FieldLockedError
	if errors.As(err, &fe) {
		c.JSON(http.StatusConflict, apierror.NewCampo(err.Error(), fe.Campo, fe.ProductoID.String()))
		return
	}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		productoID := ""
		if ve.ProductoID != nil {
			productoID = ve.ProductoID.String()
		}
		c.JSON(http.StatusBadRequest, apierror.NewCampo(err.Error(), ve.Campo, productoID))
		return
	}
	if apperr.IsNotFound(err) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
}
