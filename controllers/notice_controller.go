package controllers

import (
	"time"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/models"
	"github.com/Nikhil-527/VidyaSetu/utils"
	"github.com/gin-gonic/gin"
)

// GetNotices lists published notices for the public site, newest first.
// Important notices can be filtered with ?important=true.
func GetNotices(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Notice{}).Where("published_at <= ?", time.Now())
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("important") == "true" {
		query = query.Where("important = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch notices", nil)
		return
	}

	var notices []models.Notice
	if err := query.Order("published_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&notices).Error; err != nil {
		utils.LogError("Failed to fetch notices: %v", err)
		utils.InternalServerError(c, "Failed to fetch notices", nil)
		return
	}

	utils.SuccessWithPagination(c, "Notices retrieved", notices, total, pagination.Page, pagination.Limit)
}

// GetNotice returns one notice by id.
func GetNotice(c *gin.Context) {
	var notice models.Notice
	if err := config.DB.First(&notice, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Notice not found")
		return
	}
	utils.Success(c, "Notice retrieved", notice)
}

// CreateNotice publishes a notice, with an optional attachment. Admin
// only; the form is multipart so the attachment can ride along.
func CreateNotice(c *gin.Context) {
	utils.LogInfo("CreateNotice called")

	title := utils.SanitizeString(c.PostForm("title"))
	body := c.PostForm("body")
	if title == "" || body == "" {
		utils.BadRequest(c, "title and body are required", nil)
		return
	}
	if err := utils.ValidateStringLength(title, 3, 200); err != nil {
		utils.BadRequest(c, "Invalid title", err.Error())
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = "general"
	}

	publishedAt := time.Now()
	if ts := c.PostForm("published_at"); ts != "" {
		parsed, err := time.Parse("2006-01-02", ts)
		if err != nil {
			utils.BadRequest(c, "published_at must be in YYYY-MM-DD format", nil)
			return
		}
		publishedAt = parsed
	}

	attachmentPath := ""
	if file, err := c.FormFile("attachment"); err == nil {
		if err := utils.ValidateDocumentFile(file); err != nil {
			utils.BadRequest(c, "Invalid attachment", err.Error())
			return
		}
		attachmentPath, err = utils.SaveUploadedFile(file, "uploads/notices")
		if err != nil {
			utils.LogError("Failed to save notice attachment: %v", err)
			utils.InternalServerError(c, "Failed to save attachment", nil)
			return
		}
	}

	notice := models.Notice{
		Title:          title,
		Body:           body,
		Category:       category,
		Important:      c.PostForm("important") == "true",
		AttachmentPath: attachmentPath,
		PublishedAt:    publishedAt,
	}
	if err := config.DB.Create(&notice).Error; err != nil {
		utils.LogError("Failed to create notice: %v", err)
		utils.InternalServerError(c, "Failed to create notice", nil)
		return
	}

	utils.LogInfo("Notice %d published: %s", notice.ID, notice.Title)
	utils.Created(c, "Notice published", notice)
}

// UpdateNotice edits a notice's fields.
func UpdateNotice(c *gin.Context) {
	var notice models.Notice
	if err := config.DB.First(&notice, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Notice not found")
		return
	}

	var req struct {
		Title     *string `json:"title"`
		Body      *string `json:"body"`
		Category  *string `json:"category"`
		Important *bool   `json:"important"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = utils.SanitizeString(*req.Title)
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Important != nil {
		updates["important"] = *req.Important
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&notice).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update notice %d: %v", notice.ID, err)
		utils.InternalServerError(c, "Failed to update notice", nil)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, notice)
}

// DeleteNotice removes a notice and its attachment.
func DeleteNotice(c *gin.Context) {
	var notice models.Notice
	if err := config.DB.First(&notice, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Notice not found")
		return
	}

	if err := config.DB.Delete(&notice).Error; err != nil {
		utils.LogError("Failed to delete notice %d: %v", notice.ID, err)
		utils.InternalServerError(c, "Failed to delete notice", nil)
		return
	}
	if notice.AttachmentPath != "" {
		if err := utils.DeleteFile(notice.AttachmentPath); err != nil {
			utils.LogError("Failed to remove notice attachment %s: %v", notice.AttachmentPath, err)
		}
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
