package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mayaverdell/threadline-backend/api/responses"
	"github.com/mayaverdell/threadline-backend/api/validators"
	"github.com/mayaverdell/threadline-backend/internal/catalog"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
)

// AdminUpdateProduct applies a partial edit to a product. Fields omitted from
// the body are left untouched; the response is the full updated record.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type updateProductRequest struct {
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description      *string   `json:"description,omitempty"`
	Price            *string   `json:"price,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	CategoryID       *string   `json:"category_id,omitempty"`
	SubcategoryID    *string   `json:"subcategory_id,omitempty"`
	SubsubcategoryID *string   `json:"subsubcategory_id,omitempty"`
	InStock          *bool     `json:"in_stock,omitempty"`
}

func (r updateProductRequest) toUpdateInput() (catalog.UpdateProductInput, error) {
	input := catalog.UpdateProductInput{
		Name:             r.Name,
		Description:      r.Description,
		Tags:             r.Tags,
		CategoryID:       r.CategoryID,
		SubcategoryID:    r.SubcategoryID,
		SubsubcategoryID: r.SubsubcategoryID,
		InStock:          r.InStock,
	}

	if r.Price != nil {
		parsed, err := decimal.NewFromString(strings.TrimSpace(*r.Price))
		if err != nil {
			return catalog.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
		}
		if parsed.IsNegative() {
			return catalog.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		input.Price = &parsed
	}

	return input, nil
}
