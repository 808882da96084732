package server

import (
	"net/http"
	"strconv"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/Kyle5427/web-data-management-system/internal/errors"
	"github.com/Kyle5427/web-data-management-system/internal/money"
	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
}

type productPatchRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *money.Cents `json:"price"`
}

type productResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        money.Cents `json:"price"`
	DisplayPrice string      `json:"display_price"`
}

func toProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		DisplayPrice: product.Price.String(),
	}
}

// productID parses the path parameter. A non-numeric id behaves like a
// missing record.
func productID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.NotFoundError("product not found")
	}
	return id, nil
}

func (s *Server) handleListProducts(c echo.Context) error {
	products, err := s.app.ListProducts(c.Request().Context(), s.sessionToken(c))
	if err != nil {
		return err
	}

	responses := make([]productResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return c.JSON(http.StatusOK, responses)
}

func (s *Server) handleGetProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	product, err := s.app.GetProduct(c.Request().Context(), s.sessionToken(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

func (s *Server) handleCreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := s.app.CreateProduct(c.Request().Context(), s.sessionToken(c), domain.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(*product))
}

func (s *Server) handleUpdateProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req productPatchRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := s.app.UpdateProduct(c.Request().Context(), s.sessionToken(c), id, domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

func (s *Server) handleDeleteProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := s.app.DeleteProduct(c.Request().Context(), s.sessionToken(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
