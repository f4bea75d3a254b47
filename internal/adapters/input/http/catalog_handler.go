package http

import (
	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ListProducts func
/* list the catalog */
// ListProducts godoc
// @Summary List products
// @Description List the catalog
// @Tags CATALOG
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products	[get]
// @Produce json
func (hdl *HTTPHandler) ListProducts(c *fiber.Ctx) error {
	products, err := hdl.catalog.ListProducts(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if products == nil {
		products = make([]domain.Product, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: products})
}

// GetProduct func
/* one catalog item */
// GetProduct godoc
// @Summary Get product
// @Description Get one catalog item
// @Tags CATALOG
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products/{id}	[get]
// @Produce json
// @param id path string true "product id"
func (hdl *HTTPHandler) GetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	product, err := hdl.catalog.GetProduct(c.UserContext(), productID)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: product})
}

// AddProduct func
/* admin: add a catalog item */
// AddProduct godoc
// @Summary Add product
// @Description Admin creation of a catalog item
// @Tags CATALOG
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products	[post]
// @Produce json
// @param AddProduct body NewProductRequest true "AddProduct"
func (hdl *HTTPHandler) AddProduct(c *fiber.Ctx) error {
	var request NewProductRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	price, err := decimal.NewFromString(request.SellingPrice)
	if err != nil || price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	// Convert HTTP request to domain request
	domainReq := domain.NewProductRequest{
		Name:         request.Name,
		Description:  request.Description,
		Category:     request.Category,
		SellingPrice: price,
		Stock:        request.Stock,
		ImageURL:     request.ImageURL,
	}
	product, err := hdl.catalog.AddProduct(c.UserContext(), domainReq)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: product})
}
