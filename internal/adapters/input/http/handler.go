package http

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	cart      input.CartStore
	auth      input.AuthService
	catalog   input.CatalogService
	orders    input.OrderService
	accounts  input.AccountService
	chat      input.ChatService
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(
	cart input.CartStore,
	auth input.AuthService,
	catalog input.CatalogService,
	orders input.OrderService,
	accounts input.AccountService,
	chat input.ChatService,
	db *gorm.DB,
) *HTTPHandler {
	return &HTTPHandler{
		cart:      cart,
		auth:      auth,
		catalog:   catalog,
		orders:    orders,
		accounts:  accounts,
		chat:      chat,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// failure maps domain errors onto the HTTP response envelope.
func failure(c *fiber.Ctx, err error) error {
	var status Status
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		status = Unauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = NotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		status = BadRequest
	case errors.Is(err, domain.ErrBackendUnavailable):
		status = BadGateway
	default:
		status = InternalServerError
	}
	msg := ResponseBody{Status: status}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(msg.Status.Code).JSON(msg)
}

// GetCart func
/* read the session cart */
// GetCart godoc
// @Summary Get cart
// @Description Get the session cart with line subtotals and grand total
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart	[get]
// @Produce json
func (hdl *HTTPHandler) GetCart(c *fiber.Ctx) error {
	snapshot := hdl.cart.Snapshot()
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(snapshot)})
}

// AddCartItem func
/* add a product to the cart */
// AddCartItem godoc
// @Summary Add cart item
// @Description Add a product to the cart, merging quantities for a product already present
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/items	[post]
// @Produce json
// @param AddCartItem body AddCartItemRequest true "AddCartItem"
func (hdl *HTTPHandler) AddCartItem(c *fiber.Ctx) error {
	var request AddCartItemRequest
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
	// Convert HTTP request to domain request
	raw := domain.RawProduct{
		ProductID:    request.ProductID,
		ProductName:  request.ProductName,
		Name:         request.Name,
		Price:        request.Price,
		SellingPrice: request.SellingPrice,
		ImageURL:     request.ImageURL,
		Image:        request.Image,
	}
	hdl.cart.AddItem(c.UserContext(), raw, request.Quantity)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(hdl.cart.Snapshot())})
}

// UpdateCartItem func
/* set a cart line's quantity */
// UpdateCartItem godoc
// @Summary Update cart item
// @Description Set a cart line's quantity, clamped to a minimum of one
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/items/{productId}	[put]
// @Produce json
// @param productId path string true "product id"
// @param UpdateCartItem body UpdateCartItemRequest true "UpdateCartItem"
func (hdl *HTTPHandler) UpdateCartItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request UpdateCartItemRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	hdl.cart.UpdateQuantity(c.UserContext(), productID, request.Quantity)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(hdl.cart.Snapshot())})
}

// RemoveCartItem func
/* remove a cart line */
// RemoveCartItem godoc
// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart/items/{productId}	[delete]
// @Produce json
// @param productId path string true "product id"
func (hdl *HTTPHandler) RemoveCartItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	hdl.cart.RemoveItem(c.UserContext(), productID)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(hdl.cart.Snapshot())})
}

// ClearCart func
/* empty the cart */
// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart locally and, for a signed-in session, remotely
// @Tags CART
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/cart	[delete]
// @Produce json
func (hdl *HTTPHandler) ClearCart(c *fiber.Ctx) error {
	hdl.cart.Clear(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toCartResponse(hdl.cart.Snapshot())})
}
