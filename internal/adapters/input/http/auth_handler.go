package http

import (
	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Login func
/* sign in and merge the guest cart */
// Login godoc
// @Summary Login
// @Description Sign in; the guest cart is merged into the account's remote cart
// @Tags AUTH
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auth/login	[post]
// @Produce json
// @param Login body LoginRequest true "Login"
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
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

	session, err := hdl.auth.Login(c.UserContext(), domain.LoginRequest{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toSessionResponse(session)})
}

// Register func
/* create an account and sign in */
// Register godoc
// @Summary Register
// @Description Create an account and sign in
// @Tags AUTH
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auth/register	[post]
// @Produce json
// @param Register body RegisterRequest true "Register"
func (hdl *HTTPHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest
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

	session, err := hdl.auth.Register(c.UserContext(), domain.RegisterRequest{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toSessionResponse(session)})
}

// Logout func
/* end the session */
// Logout godoc
// @Summary Logout
// @Description End the session; local state is cleared, the remote cart is kept
// @Tags AUTH
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auth/logout	[post]
// @Produce json
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	hdl.auth.Logout()
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// Me func
/* current principal */
// Me godoc
// @Summary Current session
// @Description Get the signed-in principal, null for guests
// @Tags AUTH
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auth/me	[get]
// @Produce json
func (hdl *HTTPHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toSessionResponse(hdl.auth.Current())})
}

// UpdateProfile func
/* change the signed-in user's own account */
// UpdateProfile godoc
// @Summary Update profile
// @Description Change the signed-in user's own account fields
// @Tags AUTH
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/auth/profile	[put]
// @Produce json
// @param UpdateProfile body ProfileUpdateRequest true "UpdateProfile"
func (hdl *HTTPHandler) UpdateProfile(c *fiber.Ctx) error {
	var request ProfileUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	session, err := hdl.auth.UpdateProfile(c.UserContext(), domain.ProfileUpdateRequest{
		Name:         request.Name,
		ProfilePhoto: request.ProfilePhoto,
		PhoneNumber:  request.PhoneNumber,
		Address:      request.Address,
		IDNumber:     request.IDNumber,
	})
	if err != nil {
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toSessionResponse(session)})
}

// ListUsers func
/* admin: list accounts */
// ListUsers godoc
// @Summary List users
// @Description Admin listing of all accounts
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/users	[get]
// @Produce json
func (hdl *HTTPHandler) ListUsers(c *fiber.Ctx) error {
	users, err := hdl.accounts.ListUsers(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if users == nil {
		users = make([]domain.AccountRecord, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: users})
}

// UpdateUser func
/* admin: edit an account */
// UpdateUser godoc
// @Summary Update user
// @Description Admin edit of another user's account
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/users/{id}	[put]
// @Produce json
// @param id path string true "user id"
// @param UpdateUser body UserUpdateRequest true "UpdateUser"
func (hdl *HTTPHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request UserUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	domainReq := domain.UserUpdateRequest{
		Name:        request.Name,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Address:     request.Address,
	}
	if request.Role != nil {
		role := domain.Role(*request.Role)
		domainReq.Role = &role
	}
	if err := hdl.accounts.UpdateUser(c.UserContext(), userID, domainReq); err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// DeleteUser func
/* admin: delete an account */
// DeleteUser godoc
// @Summary Delete user
// @Description Admin removal of an account
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/users/{id}	[delete]
// @Produce json
// @param id path string true "user id"
func (hdl *HTTPHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.accounts.DeleteUser(c.UserContext(), userID); err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
