package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Request types carried in the "type" field. An absent type means batch.
const (
	TypeBatch        = "batch"
	TypeIntraday     = "intraday"
	TypePriceSummary = "price_summary"
	TypeSearch       = "search"
)

type BatchRequest struct {
	Equities []string `json:"equities"`
	Cryptos  []string `json:"cryptos"`
}

type IntradayRequest struct {
	Symbol   string `json:"symbol" validate:"required"`
	Interval string `json:"interval" default:"1m"`
	Lookback string `json:"lookback" default:"1d"`
}

type PriceSummaryRequest struct {
	Symbol string `json:"symbol" validate:"required"`
}

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit" default:"10"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// prepare fills defaults and validates req, which must be a struct pointer.
func prepare(req any) error {
	if err := defaults.Set(req); err != nil {
		return err
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(errorMessage(verrs[0]))
		}
		return err
	}
	return nil
}

func errorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
