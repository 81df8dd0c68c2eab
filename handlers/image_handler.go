package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/helper"
	"inkwell/models"
	"inkwell/services"
)

type ImageHandler struct {
	imageService services.ImageService
	httpHelper   *helper.HTTPHelper
}

func NewImageHandler(imageService services.ImageService, httpHelper *helper.HTTPHelper) *ImageHandler {
	return &ImageHandler{imageService: imageService, httpHelper: httpHelper}
}

// GetImages lists the upload directory; pass asc=1 or asc=0 for a
// lexicographic sort.
func (h *ImageHandler) GetImages(c *gin.Context) {
	var (
		images []string
		err    error
	)

	if option := c.Query("asc"); option != "" {
		asc, parseErr := strconv.ParseBool(option)
		if parseErr != nil {
			h.httpHelper.SendBadRequest(c, "Invalid sort option")
			return
		}
		images, err = h.imageService.GetAllImagesSorted(asc)
	} else {
		images, err = h.imageService.GetAllImages()
	}
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}

	h.httpHelper.SendSuccess(c, "", images)
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.httpHelper.SendBadRequest(c, "An image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	defer src.Close()

	name, err := h.imageService.SaveImage(file.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidImage):
			h.httpHelper.SendBadRequest(c, "That doesn't look like an image we can host!")
		case errors.Is(err, models.ErrImageExists):
			h.httpHelper.SendBadRequest(c, "An image with that name already exists!")
		default:
			h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		}
		return
	}

	h.httpHelper.SendCreated(c, "Your image has been uploaded!", gin.H{"filename": name})
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	deleted, err := h.imageService.DeleteImage(c.Param("name"))
	if err != nil {
		h.httpHelper.SendInternalServerError(c, "Something went wrong! Please try again.")
		return
	}
	if !deleted {
		h.httpHelper.SendNotFoundError(c, "Sorry, we can't find what you're looking for...")
		return
	}

	h.httpHelper.SendSuccess(c, "Your image has been deleted!", nil)
}
