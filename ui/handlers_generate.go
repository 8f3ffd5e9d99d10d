package ui

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"godraft/adapters/excel"
	"godraft/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleGenerate drives one full generation request: validate uploads,
// stage them in a request-scoped working directory, read the table,
// generate all documents, and stream back the archive. The working
// directory is removed on every exit path.
func (s *Server) handleGenerate(c *gin.Context) {
	templateFile, err := c.FormFile("template")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template file is required"})
		return
	}
	dataFile, err := c.FormFile("data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data file is required"})
		return
	}

	// Extension checks happen before any processing
	if !strings.HasSuffix(strings.ToLower(templateFile.Filename), ".docx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template must be a .docx file"})
		return
	}
	dataExt := strings.ToLower(filepath.Ext(dataFile.Filename))
	if dataExt != ".xlsx" && dataExt != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data file must be a .xlsx or .csv file"})
		return
	}

	jobID := uuid.NewString()
	workDir, err := os.MkdirTemp("", "godraft-"+jobID)
	if err != nil {
		log.Printf("[Generate] %s FAILED - could not create working directory: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
		return
	}
	defer os.RemoveAll(workDir)

	templatePath := filepath.Join(workDir, "template.docx")
	dataPath := filepath.Join(workDir, "input"+dataExt)
	if err := c.SaveUploadedFile(templateFile, templatePath); err != nil {
		log.Printf("[Generate] %s FAILED - could not save template upload: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
		return
	}
	if err := c.SaveUploadedFile(dataFile, dataPath); err != nil {
		log.Printf("[Generate] %s FAILED - could not save data upload: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
		return
	}

	templateBytes, err := os.ReadFile(templatePath)
	if err != nil {
		log.Printf("[Generate] %s FAILED - could not read staged template: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
		return
	}

	table, err := excel.NewDataReader(dataPath).ReadTable()
	if err != nil {
		log.Printf("[Generate] %s FAILED - could not read data file: %v", jobID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read data file"})
		return
	}

	result, err := s.service.Generate(table, templateBytes)
	if err != nil {
		s.respondError(c, jobID, err)
		return
	}

	archiveReader, err := s.packager.Pack(result.Documents)
	if err != nil {
		log.Printf("[Generate] %s FAILED - could not build archive: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
		return
	}

	log.Printf("[Generate] %s complete (%d documents)", jobID, result.Generated)
	downloadName := fmt.Sprintf("contracts_%d.zip", result.Generated)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.DataFromReader(http.StatusOK, archiveReader.Size(), "application/zip", archiveReader, nil)
}

// respondError maps service errors onto the transport: client-caused
// validation failures get 400 with the message, everything else gets an
// opaque 500.
func (s *Server) respondError(c *gin.Context, jobID string, err error) {
	if errors.GetCode(err) == errors.CodeValidationError {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[Generate] %s FAILED - %v", jobID, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
}
