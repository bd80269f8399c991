package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
	"github.com/spec-kit/notice-board/internal/service"
	"github.com/spec-kit/notice-board/pkg/util"
)

// NoticesHandler exposes the notice board endpoints.
type NoticesHandler struct {
	notices *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{notices: noticeService}
}

// List handles GET /notices.
func (h *NoticesHandler) List(c *fiber.Ctx) error {
	notices, err := h.notices.ListNotices(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": notices})
}

// Create handles POST /notices. A multipart form may carry an optional file
// under the "attachment" field; a JSON body posts without one.
func (h *NoticesHandler) Create(c *fiber.Ctx) error {
	input, err := parseNoticeCreate(c)
	if err != nil {
		return err
	}

	notice, err := h.notices.PostNotice(c.UserContext(), *input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": notice})
}

// Attachment handles GET /notices/:id/attachment, serving the decoded file
// for inline viewing.
func (h *NoticesHandler) Attachment(c *fiber.Ctx) error {
	name, mimeType, data, err := h.notices.Attachment(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, mimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(data)
}

func parseNoticeCreate(c *fiber.Ctx) (*service.NoticeCreateInput, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return parseNoticeMultipart(c)
	}

	var req dto.NoticeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, util.NewValidationError("invalid payload", nil)
	}
	return &service.NoticeCreateInput{
		Poster:         req.Poster,
		Title:          req.Title,
		Departments:    req.Departments,
		ClassSelection: req.ClassSelection,
		Years:          req.Years,
		Content:        req.Content,
	}, nil
}

func parseNoticeMultipart(c *fiber.Ctx) (*service.NoticeCreateInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, util.NewValidationError("invalid multipart form", nil)
	}

	input := &service.NoticeCreateInput{
		Poster:         firstValue(form.Value["poster"]),
		Title:          firstValue(form.Value["title"]),
		Departments:    form.Value["departments"],
		ClassSelection: firstValue(form.Value["class_selection"]),
		Years:          form.Value["years"],
		Content:        firstValue(form.Value["content"]),
	}

	if files := form.File["attachment"]; len(files) > 0 {
		fileHeader := files[0]
		blob, err := fileHeader.Open()
		if err != nil {
			return nil, util.NewValidationError("attachment could not be read", map[string]any{
				"name": fileHeader.Filename,
			})
		}
		// The blob is consumed by the encoder inside PostNotice before the
		// request completes.
		input.Attachment = &service.AttachmentInput{
			Name:     fileHeader.Filename,
			MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
			Blob:     blob,
		}
	}
	return input, nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
