package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

// allowedDocumentFolders defines permitted folders for patient document
// uploads.
var allowedDocumentFolders = map[string]bool{
	"medical-reports": true,
	"passports":       true,
	"visas":           true,
}

// UploadDocumentHandler stores a patient document in Cloudinary.
// POST /api/documents/:folder
func (h *HandlerBundle) UploadDocumentHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedDocumentFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid folder",
			"allowed values are 'medical-reports', 'passports' and 'visas'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadDocument(c.Request.Context(), tempFilePath, "patients/"+folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload document", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.DownloadURL(c.Request.Context(), publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"documentId":  publicID,
		"downloadURL": downloadURL,
	})
}

// DeleteDocumentHandler removes a previously uploaded patient document.
// DELETE /api/documents/:folder/:id
func (h *HandlerBundle) DeleteDocumentHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedDocumentFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid folder", "")
		return
	}

	publicID := "patients/" + folder + "/" + c.Param("id")
	if err := h.StorageSvc.DeleteDocument(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete document", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
