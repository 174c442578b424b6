package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/alhafizh-api/internal/service"
	"github.com/noah-isme/alhafizh-api/internal/utils"
)

// DefaultImportMaxBytes caps an import upload when no limit is configured.
const DefaultImportMaxBytes = 1 << 20

var (
	errImportTooLarge = errors.New("import file too large")
	errImportNotText  = errors.New("import file must be plain text csv")
)

// DataHandler wires CSV import/export and store reload.
type DataHandler struct {
	service  service.TrackerService
	logger   zerolog.Logger
	maxBytes int64
	limiter  fiber.Handler
}

// NewDataHandler constructs the handler. The limiter, when set, guards the import route.
func NewDataHandler(service service.TrackerService, logger zerolog.Logger, maxBytes int, limiter fiber.Handler) *DataHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultImportMaxBytes
	}
	return &DataHandler{
		service:  service,
		logger:   logger.With().Str("component", "data_handler").Logger(),
		maxBytes: int64(maxBytes),
		limiter:  limiter,
	}
}

// Register attaches data routes to the router group.
func (h *DataHandler) Register(router fiber.Router) {
	router.Get("/export", h.export)
	if h.limiter != nil {
		router.Post("/import", h.limiter, h.importCSV)
	} else {
		router.Post("/import", h.importCSV)
	}
	router.Post("/reload", h.reload)
}

func (h *DataHandler) export(c *fiber.Ctx) error {
	result := h.service.ExportCSV(requestContext(c))

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.Filename))
	return c.Status(fiber.StatusOK).Send(result.Content)
}

func (h *DataHandler) importCSV(c *fiber.Ctx) error {
	raw, err := h.readImport(c)
	if err != nil {
		switch {
		case errors.Is(err, errImportTooLarge):
			return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, errImportNotText):
			return utils.SendError(c, fiber.StatusUnsupportedMediaType, err.Error())
		default:
			return utils.SendError(c, fiber.StatusBadRequest, "unable to read import file")
		}
	}

	summary, err := h.service.ImportCSV(requestContext(c), string(raw))
	if err != nil {
		if isValidationError(err) {
			return sendValidationError(c, err)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to import csv")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to import csv")
	}
	return utils.SendSuccess(c, "import completed", summary)
}

func (h *DataHandler) reload(c *fiber.Ctx) error {
	h.service.Reload(requestContext(c))
	return utils.SendSuccess(c, "data reloaded", fiber.Map{
		"classes":  len(h.service.ListClasses(requestContext(c))),
		"students": h.service.Dashboard(requestContext(c)).TotalStudents,
	})
}

// readImport takes the multipart "file" field when present, otherwise the raw body.
func (h *DataHandler) readImport(c *fiber.Ctx) ([]byte, error) {
	var data []byte
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		if file.Size > h.maxBytes {
			return nil, errImportTooLarge
		}
		handle, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer handle.Close()

		buf := bytes.NewBuffer(nil)
		if _, err := io.Copy(buf, io.LimitReader(handle, h.maxBytes+1)); err != nil {
			return nil, err
		}
		data = buf.Bytes()
	} else {
		data = c.Body()
	}

	if int64(len(data)) > h.maxBytes {
		return nil, errImportTooLarge
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return data, nil
	}

	detected := mimetype.Detect(data)
	for mime := detected; mime != nil; mime = mime.Parent() {
		if mime.Is("text/plain") {
			return data, nil
		}
	}
	return nil, errImportNotText
}
