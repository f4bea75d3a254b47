package http

import (
	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MyOrders func
/* the signed-in user's orders */
// MyOrders godoc
// @Summary My orders
// @Description List the signed-in user's orders
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders	[get]
// @Produce json
func (hdl *HTTPHandler) MyOrders(c *fiber.Ctx) error {
	orders, err := hdl.orders.MyOrders(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if orders == nil {
		orders = make([]domain.Order, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: orders})
}

// TrackOrder func
/* tracking events for one order */
// TrackOrder godoc
// @Summary Track order
// @Description List tracking events for one order
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders/{id}/updates	[get]
// @Produce json
// @param id path string true "order id"
func (hdl *HTTPHandler) TrackOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	updates, err := hdl.orders.TrackOrder(c.UserContext(), orderID)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if updates == nil {
		updates = make([]domain.OrderUpdate, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: updates})
}

// AllOrders func
/* admin: all orders */
// AllOrders godoc
// @Summary All orders
// @Description Admin listing of every order
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/orders	[get]
// @Produce json
func (hdl *HTTPHandler) AllOrders(c *fiber.Ctx) error {
	orders, err := hdl.orders.AllOrders(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if orders == nil {
		orders = make([]domain.Order, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: orders})
}

// UpdateOrderStatus func
/* admin: advance an order */
// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Admin change of an order's fulfilment status
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/orders/{id}/status	[put]
// @Produce json
// @param id path string true "order id"
// @param UpdateOrderStatus body OrderStatusRequest true "UpdateOrderStatus"
func (hdl *HTTPHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request OrderStatusRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.orders.UpdateStatus(c.UserContext(), orderID, domain.OrderStatus(request.Status)); err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// InitiateCheckout func
/* start a mobile-money payment */
// InitiateCheckout godoc
// @Summary Initiate checkout
// @Description Start a mobile-money payment for the current cart
// @Tags CHECKOUT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/checkout/mpesa	[post]
// @Produce json
// @param InitiateCheckout body CheckoutRequest true "InitiateCheckout"
func (hdl *HTTPHandler) InitiateCheckout(c *fiber.Ctx) error {
	var request CheckoutRequest
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

	// Amount and items come from the cart, not the client.
	checkoutRequestID, err := hdl.orders.InitiateCheckout(c.UserContext(), domain.CheckoutRequest{
		PhoneNumber: request.PhoneNumber,
		Address:     request.Address,
	})
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: CheckoutResponse{CheckoutRequestID: checkoutRequestID}})
}

// CheckoutStatus func
/* poll a payment initiation */
// CheckoutStatus godoc
// @Summary Checkout status
// @Description Poll the backend's view of a payment initiation
// @Tags CHECKOUT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/checkout/status/{id}	[get]
// @Produce json
// @param id path string true "checkout request id"
func (hdl *HTTPHandler) CheckoutStatus(c *fiber.Ctx) error {
	checkoutRequestID := c.Params("id")
	if checkoutRequestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	status, err := hdl.orders.CheckoutStatus(c.UserContext(), checkoutRequestID)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: status})
}
