package controllers

import (
	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetGallery lists gallery images, optionally by category.
func GetGallery(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.GalleryImage{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch gallery", nil)
		return
	}

	var images []models.GalleryImage
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&images).Error; err != nil {
		utils.LogError("Failed to fetch gallery: %v", err)
		utils.InternalServerError(c, "Failed to fetch gallery", nil)
		return
	}

	utils.SuccessWithPagination(c, "Gallery retrieved", images, total, pagination.Page, pagination.Limit)
}

// UploadGalleryImage adds an image to the gallery. Admin only.
func UploadGalleryImage(c *gin.Context) {
	utils.LogInfo("UploadGalleryImage called")

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "An image file is required", nil)
		return
	}
	if err := utils.ValidateImageFile(file); err != nil {
		utils.BadRequest(c, "Invalid image", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads/gallery")
	if err != nil {
		utils.LogError("Failed to save gallery image: %v", err)
		utils.InternalServerError(c, "Failed to save image", nil)
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "campus"
	}

	image := models.GalleryImage{
		Title:     utils.SanitizeString(c.PostForm("title")),
		ImagePath: path,
		Category:  category,
	}
	if err := config.DB.Create(&image).Error; err != nil {
		utils.LogError("Failed to record gallery image: %v", err)
		utils.InternalServerError(c, "Failed to save image", nil)
		return
	}

	utils.Created(c, utils.MsgUploadSuccess, image)
}

// DeleteGalleryImage removes an image record and its file.
func DeleteGalleryImage(c *gin.Context) {
	var image models.GalleryImage
	if err := config.DB.First(&image, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Image not found")
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		utils.LogError("Failed to delete gallery image %d: %v", image.ID, err)
		utils.InternalServerError(c, "Failed to delete image", nil)
		return
	}
	if err := utils.DeleteFile(image.ImagePath); err != nil {
		utils.LogError("Failed to remove gallery file %s: %v", image.ImagePath, err)
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
