// Package api exposes statement conversion over HTTP.
package api

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Origon/StatementParser/internal/models"
	"github.com/Origon/StatementParser/internal/parser"
	"github.com/Origon/StatementParser/internal/writer"
)

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Template     string               `json:"template,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	CSV          string               `json:"csv,omitempty"`
	Count        int                  `json:"count"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Log *logrus.Logger
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/convert", h.handleConvert)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"templates": parser.Templates(),
	})
}

func (h *Handler) handleConvert(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	f, err := header.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("Failed to open upload: %v", err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to read upload: %v", err))
	}

	template, err := parser.Detect(data)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	txns, err := parser.Parse(data)
	if err != nil {
		h.Log.WithError(err).WithFields(logrus.Fields{
			"file":     header.Filename,
			"template": template,
		}).Error("Extraction failed")
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("Extraction failed: %v", err))
	}

	var csvBuf bytes.Buffer
	w := &writer.CSVWriter{}
	if err := w.Write(&csvBuf, txns); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	// nil marshals to JSON null, not []
	if txns == nil {
		txns = []models.Transaction{}
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Template:     template,
		Transactions: txns,
		CSV:          csvBuf.String(),
		Count:        len(txns),
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}
