package server

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/document"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/format"
)

type handler struct {
	svc     Assistant
	audio   *audioStore
	timeout time.Duration
	logger  *zap.Logger
}

func (h *handler) RegisterRoutes(r fiber.Router) {
	v1 := r.Group("/v1")
	v1.Post("/query", h.Query)
	v1.Post("/fsd", h.UploadFSD)
	v1.Post("/format", h.Format)
	v1.Post("/speech", h.Speech)
	v1.Get("/audio/:id", h.Audio)
	v1.Delete("/audio/:id", h.RevokeAudio)
}

func (h *handler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx := c.UserContext()
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

func (h *handler) Health(c *fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok", Configured: h.svc.Configured()})
}

func (h *handler) Query(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	intent, err := dispatch.ParseIntent(req.Intent)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := h.context(c)
	defer cancel()

	var answer *dispatch.Answer
	if intent == dispatch.IntentFSD {
		answer, err = h.svc.AnalyzeFSD(ctx, req.Document, req.Query)
	} else {
		answer, err = h.svc.Ask(ctx, intent, req.Query)
	}
	if err != nil {
		return err
	}
	return c.JSON(newAnswerResponse(answer))
}

// UploadFSD accepts a multipart form with an optional "file" and a "text"
// field, mirroring the paste area and document picker of the UI.
func (h *handler) UploadFSD(c *fiber.Ctx) error {
	var fileText string
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to read the selected file.")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to read the selected file.")
		}
		doc, err := document.Parse(fh.Filename, data)
		if err != nil {
			return err
		}
		fileText = doc.Content
	}

	ctx, cancel := h.context(c)
	defer cancel()

	// Form values alias the request buffer, which fasthttp reuses.
	pasted := utils.CopyString(c.FormValue("text"))

	answer, err := h.svc.AnalyzeFSD(ctx, fileText, pasted)
	if err != nil {
		return err
	}
	return c.JSON(newAnswerResponse(answer))
}

func (h *handler) Format(c *fiber.Ctx) error {
	var req formatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	blocks := format.Format(req.Text)
	return c.JSON(formatResponse{Blocks: nonNil(blocks), Markdown: format.Markdown(blocks)})
}

func (h *handler) Speech(c *fiber.Ctx) error {
	var req speechRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := h.context(c)
	defer cancel()

	wav, err := h.svc.Speak(ctx, req.Text)
	if err != nil {
		return err
	}

	id := h.audio.put(wav)
	return c.Status(fiber.StatusCreated).JSON(speechResponse{
		ID:   id,
		URL:  "/api/v1/audio/" + id,
		Size: len(wav),
	})
}

func (h *handler) Audio(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	wav, ok := h.audio.get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "audio not found")
	}
	c.Set(fiber.HeaderContentType, "audio/wav")
	return c.Send(wav)
}

func (h *handler) RevokeAudio(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if !h.audio.revoke(id) {
		return fiber.NewError(fiber.StatusNotFound, "audio not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid audio id")
	}
	return id.String(), nil
}

func newAnswerResponse(a *dispatch.Answer) answerResponse {
	return answerResponse{
		Text:    a.Text,
		Blocks:  nonNil(format.Format(a.Text)),
		Sources: a.Sources,
	}
}

func nonNil(blocks []format.Block) []format.Block {
	if blocks == nil {
		return []format.Block{}
	}
	return blocks
}
