package controllers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/utils"
)

// UploadFile forwards a single multipart file to the media host and returns
// the hosted URL.
func UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Could not read the uploaded file")
	}
	defer file.Close()

	publicID := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	url, err := utils.UploadToCloudinary(c.UserContext(), file, publicID, "clinic-uploads")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadGateway, "Upload failed: "+err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "File uploaded successfully", fiber.Map{
		"url": url,
	})
}
