package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pylearn/internal/domain"
	"pylearn/internal/dto"
	"pylearn/internal/logger"
	"pylearn/internal/service"
	"pylearn/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const streamKeepAlive = 25 * time.Second

// FriendHandler handles friend list requests
type FriendHandler struct {
	service   service.FriendService
	validator *validation.Validator
}

func NewFriendHandler(service service.FriendService) *FriendHandler {
	return &FriendHandler{service: service, validator: validation.NewValidator()}
}

// ListFriends godoc
// @Summary List friends
// @Description Pending and accepted friendships with the other learner's profile
// @Tags friends
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.FriendResponse
// @Router /friends [get]
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entries, err := h.service.ListFriends(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(lo.Map(entries, func(e service.FriendEntry, _ int) dto.FriendResponse {
		return dto.FriendResponse{
			Friendship: dto.NewFriendshipResponse(e.Friendship),
			Friend:     dto.NewProfileResponse(e.Friend),
		}
	}))
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags friends
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.FriendRequest true "Friend"
// @Success 201 {object} dto.FriendshipResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /friends [post]
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.FriendRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateUserID("friend_id", req.FriendID); len(errs) > 0 {
		return errs
	}

	friendship, err := h.service.SendRequest(c.UserContext(), userID, req.FriendID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewFriendshipResponse(friendship))
}

// Accept godoc
// @Summary Accept a friend request
// @Tags friends
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Friendship ID"
// @Success 200 {object} dto.FriendshipResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /friends/{id}/accept [post]
func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	friendship, err := h.service.Accept(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFriendshipResponse(friendship))
}

// Remove godoc
// @Summary Remove a friend or cancel a request
// @Tags friends
// @Security ApiKeyAuth
// @Param id path string true "Friendship ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /friends/{id} [delete]
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Remove(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NotificationHandler serves stored notifications and the live stream.
type NotificationHandler struct {
	service   service.NotificationService
	validator *validation.Validator
	// streams end when base is cancelled
	base context.Context
}

func NewNotificationHandler(base context.Context, service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service, validator: validation.NewValidator(), base: base}
}

// List godoc
// @Summary List notifications
// @Tags notifications
// @Security ApiKeyAuth
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Maximum number of notifications"
// @Success 200 {array} dto.NotificationResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 0)
	if errs := h.validator.ValidateLimit(limit); len(errs) > 0 {
		return errs
	}
	list, err := h.service.List(c.UserContext(), userID, c.QueryBool("unread", false), limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewNotificationResponses(list))
}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkRead(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "notification marked as read"})
}

// Stream godoc
// @Summary Live notifications
// @Description Server-sent events, one "notification" event per message
// @Tags notifications
// @Security ApiKeyAuth
// @Produce text/event-stream
// @Success 200 {object} dto.NotificationResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(h.base)
	ch, err := h.service.Subscribe(ctx, userID)
	if err != nil {
		cancel()
		if errors.Is(err, service.ErrRealtimeUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		}
		return domain.NewInternalError("failed to open notification stream", err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		log := logger.Get().With(zap.String("user_id", userID))
		log.Debug("Notification stream opened")

		ticker := time.NewTicker(streamKeepAlive)
		defer ticker.Stop()

		if err := writeComment(w, "connected"); err != nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				log.Debug("Notification stream closed by server")
				return
			case <-ticker.C:
				if err := writeComment(w, "ping"); err != nil {
					log.Debug("Notification stream client gone", zap.Error(err))
					return
				}
			case n, ok := <-ch:
				if !ok {
					return
				}
				if err := writeEvent(w, "notification", dto.NewNotificationResponse(n)); err != nil {
					log.Debug("Notification stream client gone", zap.Error(err))
					return
				}
			}
		}
	}))
	return nil
}

func writeComment(w *bufio.Writer, text string) error {
	if _, err := fmt.Fprintf(w, ": %s\n\n", text); err != nil {
		return err
	}
	return w.Flush()
}

func writeEvent(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

// ChatHandler handles AI tutor requests
type ChatHandler struct {
	service   service.ChatService
	validator *validation.Validator
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service, validator: validation.NewValidator()}
}

// Chat godoc
// @Summary Ask the AI tutor
// @Description Answers with the first available model, or a canned reply when none responds
// @Tags chat
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	if errs := h.validator.ValidateChat(&req); len(errs) > 0 {
		return errs
	}

	reply, err := h.service.Chat(c.UserContext(), domain.ChatRequest{
		UserID:         userID,
		Message:        req.Message,
		ConversationID: req.ConversationID,
		LessonContext:  req.LessonContext,
		Personality:    domain.Personality(req.Personality),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewChatResponse(reply))
}
