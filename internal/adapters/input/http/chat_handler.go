package http

import (
	"bufio"
	"encoding/json"

	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListAdmins func
/* admins available for support chat */
// ListAdmins godoc
// @Summary List admins
// @Description List the admins a user can open a support conversation with
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/admins	[get]
// @Produce json
func (hdl *HTTPHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := hdl.chat.ListAdmins(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if admins == nil {
		admins = make([]domain.AdminContact, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: admins})
}

// ChatHistory func
/* message history with one partner */
// ChatHistory godoc
// @Summary Chat history
// @Description Message history between the signed-in user and one partner
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/messages	[get]
// @Produce json
// @param partner_id query string true "partner id"
func (hdl *HTTPHandler) ChatHistory(c *fiber.Ctx) error {
	condition := ChatHistoryRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	messages, err := hdl.chat.History(c.UserContext(), condition.PartnerID)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if messages == nil {
		messages = make([]domain.ChatMessage, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: messages})
}

// SendMessage func
/* send one support-chat message */
// SendMessage godoc
// @Summary Send message
// @Description Send one support-chat message
// @Tags CHAT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/messages	[post]
// @Produce json
// @param SendMessage body SendMessageRequest true "SendMessage"
func (hdl *HTTPHandler) SendMessage(c *fiber.Ctx) error {
	var request SendMessageRequest
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

	message, err := hdl.chat.Send(c.UserContext(), request.ReceiverID, request.Message)
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: message})
}

// ChatPartners func
/* admin: open conversations */
// ChatPartners godoc
// @Summary Chat partners
// @Description Admin listing of users with an open support conversation
// @Tags ADMIN
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/admin/chat/partners	[get]
// @Produce json
func (hdl *HTTPHandler) ChatPartners(c *fiber.Ctx) error {
	partners, err := hdl.chat.ChatPartners(c.UserContext())
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}
	if partners == nil {
		partners = make([]domain.ChatPartner, 0)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: partners})
}

// StreamMessages func
/* live chat delivery as newline-delimited JSON */
// StreamMessages godoc
// @Summary Stream messages
// @Description Live support-chat delivery, one JSON message per line
// @Tags CHAT
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chat/stream	[get]
// @Produce json
func (hdl *HTTPHandler) StreamMessages(c *fiber.Ctx) error {
	messages, cancel, err := hdl.chat.Subscribe()
	if err != nil {
		logrus.Errorln(err)
		return failure(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/x-ndjson")
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for message := range messages {
			payload, err := json.Marshal(message)
			if err != nil {
				logrus.Errorln(err)
				continue
			}
			payload = append(payload, '\n')
			if _, err := w.Write(payload); err != nil {
				return
			}
			// Flush per message so the client sees it immediately.
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}
