package http

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/infrastructure/gcs"
)

// UploadHandler sube imágenes de producto al blob storage y devuelve la URL
// pública, que luego viaja como string opaco en CreateProductRequest.ImageURL.
type UploadHandler struct {
	storage *gcs.ImageStorage
}

// NewUploadHandler construye el handler.
func NewUploadHandler(storage *gcs.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage godoc
// @Summary      Subir imagen de producto
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen del producto"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/uploads/image [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo image requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	objectName := fmt.Sprintf("products/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Upload(c.Context(), objectName, contentType, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
