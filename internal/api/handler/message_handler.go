package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// MessageHandler serves the internal inbox. The sender is always the
// authenticated caller.
type MessageHandler struct {
	messages ports.MessageRepository
}

func NewMessageHandler(messages ports.MessageRepository) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type createMessageRequest struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Content       string `json:"content" validate:"required"`
	MessageType   string `json:"message_type"`
}

func (h *MessageHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = "general"
	}
	message := &domain.Message{
		ID:            uuid.Must(uuid.NewV4()).String(),
		SenderID:      user.ID,
		SenderName:    user.Name,
		RecipientName: req.RecipientName,
		Subject:       req.Subject,
		Content:       req.Content,
		MessageType:   messageType,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.messages.Create(c.Request().Context(), message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) List(c echo.Context) error {
	filter := ports.MessageFilter{Search: c.QueryParam("search")}
	if raw := c.QueryParam("is_read"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid is_read value")
		}
		filter.IsRead = &isRead
	}

	messages, err := h.messages.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	if err := h.messages.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Message marked as read"})
}

func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.messages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Message deleted"})
}
