package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/okaique/paiol-dashboard-sub000/internal/apierror"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
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

// respondErro maps domain errors to HTTP status codes: not-found sentinels get
// 404, invalid transitions 409, everything else 400 with the error message.
func respondErro(c *gin.Context, err error) {
	var transicao *service.ErroTransicaoInvalida
	switch {
	case errors.Is(err, service.ErrPaiolNaoEncontrado),
		errors.Is(err, service.ErrDragagemNaoEncontrada),
		errors.Is(err, service.ErrCubagemNaoEncontrada),
		errors.Is(err, service.ErrClienteNaoEncontrado),
		errors.Is(err, service.ErrPessoaNaoEncontrada),
		errors.Is(err, service.ErrTipoInsumoNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &transicao):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCubagemJaRegistrada),
		errors.Is(err, service.ErrDragagemJaFinalizada):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
