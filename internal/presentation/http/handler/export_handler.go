package handler

import (
	"path/filepath"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/application/export"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/dto/request"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles sales data export HTTP requests
type ExportHandler struct {
	exportService *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// parseOptions builds export options from a bound request
func parseOptions(req *request.ExportRequest) (export.Options, error) {
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return export.Options{}, err
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		From:            from,
		To:              to,
		Format:          export.Format(req.Format),
		IncludeCustomer: req.IncludeCustomer,
		IncludeBatch:    req.IncludeBatch,
		CalculateProfit: req.CalculateProfit,
	}, nil
}

// Create handles generating an export file
func (h *ExportHandler) Create(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	opts, err := parseOptions(&req)
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	result, err := h.exportService.Export(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	size, _ := h.exportService.GetFileSize(result.FileName)

	response.Created(c, "Export generated successfully", gin.H{
		"file_path": result.FilePath,
		"file_name": result.FileName,
		"mime_type": result.MIMEType,
		"file_size": export.FormatFileSize(size),
		"summary":   result.Summary,
	})
}

// Preview handles previewing export data without writing a file
func (h *ExportHandler) Preview(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	opts, err := parseOptions(&req)
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	preview, err := h.exportService.GetPreviewData(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Export preview generated", preview)
}

// Download streams a previously generated export file by name
func (h *ExportHandler) Download(c *gin.Context) {
	name := c.Query("file")
	if name == "" {
		response.BadRequest(c, "File name is required")
		return
	}

	path, mime, err := h.exportService.ShareFile(name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", mime)
	c.FileAttachment(path, filepath.Base(path))
}

// Share verifies an export file and returns its metadata for sharing
func (h *ExportHandler) Share(c *gin.Context) {
	var req request.FileActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	path, mime, err := h.exportService.ShareFile(req.FileName)
	if err != nil {
		response.Error(c, err)
		return
	}

	size, err := h.exportService.GetFileSize(req.FileName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Export file ready to share", gin.H{
		"file_path": path,
		"file_name": req.FileName,
		"mime_type": mime,
		"file_size": export.FormatFileSize(size),
	})
}

// Delete removes a previously generated export file by name
func (h *ExportHandler) Delete(c *gin.Context) {
	var req request.FileActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.exportService.DeleteFile(req.FileName); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
