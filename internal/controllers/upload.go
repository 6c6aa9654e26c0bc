package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/importer"
	"github.com/SuHyeon515/wky-report/internal/importer/spreadsheet"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Name used for uploaded files without a name
const defaultUploadFilename = "upload.xlsx"

// RegisterUploadRoutes registers the routes for uploads with
// the RouterGroup that is passed. Files larger than maxUploadMB are rejected.
func RegisterUploadRoutes(r *gin.RouterGroup, maxUploadMB int) {
	// Root group
	{
		r.OPTIONS("", OptionsUploadList)
		r.GET("", GetUploads)
		r.POST("", CreateUpload)
	}

	// Upload with ID
	{
		r.OPTIONS("/:id", OptionsUploadDetail)
		r.DELETE("/:id", DeleteUpload)
	}

	// File upload
	{
		r.OPTIONS("/file", OptionsUploadFile)
		r.POST("/file", UploadFile(maxUploadMB))
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Uploads
// @Success		204
// @Router			/uploads [options]
func OptionsUploadList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Uploads
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as string"
// @Router			/uploads/{id} [options]
func OptionsUploadDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.UploadBatch{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Uploads
// @Success		204
// @Router			/uploads/file [options]
func OptionsUploadFile(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get uploads
// @Description	Returns all upload batches, newest first
// @Tags			Uploads
// @Produce		json
// @Success		200	{array}		Upload
// @Failure		500	{object}	httpError
// @Router			/uploads [get]
func GetUploads(c *gin.Context) {
	var batches []models.UploadBatch
	err := models.DB.Order("id DESC").Find(&batches).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Upload, 0, len(batches))
	for _, batch := range batches {
		data = append(data, newUpload(batch))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create upload
// @Description	Creates an empty upload batch
// @Tags			Uploads
// @Produce		json
// @Success		201		{object}	Upload
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			upload	body		UploadEditable	true	"Upload"
// @Router			/uploads [post]
func CreateUpload(c *gin.Context) {
	var editable UploadEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filename := strings.TrimSpace(editable.Filename)
	if filename == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errFilenameRequired.Error(),
		})
		return
	}

	batch := models.UploadBatch{Filename: filename}
	if branch := strings.TrimSpace(editable.Branch); branch != "" {
		batch.Branch = &branch
	}

	err = models.DB.Create(&batch).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newUpload(batch))
}

// @Summary		Delete upload
// @Description	Deletes an upload batch with all its transactions and their categorization
// @Tags			Uploads
// @Produce		json
// @Success		200	{object}	UploadDeleteResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as string"
// @Router			/uploads/{id} [delete]
func DeleteUpload(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteUploadBatch(models.DB, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, UploadDeleteResponse{Deleted: uri.ID})
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context) (multipart.File, *multipart.FileHeader, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, nil, errNoFilePost
	}

	if err != nil {
		return nil, nil, err
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, nil, err
	}

	return f, formFile, nil
}

// readUpload reads the whole file. It fails if the file has more than max bytes.
func readUpload(f io.Reader, maxUploadMB int) ([]byte, error) {
	limit := int64(maxUploadMB) * 1024 * 1024

	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}

	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w (max %dMB)", errFileTooLarge, maxUploadMB)
	}

	return content, nil
}

// parseUpload loads the spreadsheet and parses its rows.
func parseUpload(content []byte, filename string) ([]types.Row, error) {
	sheet, err := spreadsheet.Load(content, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errParseFailed, err)
	}

	rows, err := importer.Unify(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errParseFailed, err)
	}

	return rows, nil
}

// UploadFile returns the handler for bank export uploads.
//
//	@Summary		Upload bank export
//	@Description	Parses a bank export, stores new transactions and categorizes them with the rules. Transactions that have already been uploaded are skipped
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200			{object}	UploadFileResponse
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			file		formData	file	true	"Spreadsheet (xlsx or csv)"
//	@Param			branch		formData	string	false	"Branch of all transactions, overrides the branch in the file"
//	@Param			bank_hint	formData	string	false	"Bank of the export"
//	@Router			/uploads/file [post]
func UploadFile(maxUploadMB int) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, header, err := getUploadedFile(c)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
		defer f.Close()

		content, err := readUpload(f, maxUploadMB)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		filename := strings.TrimSpace(header.Filename)
		if filename == "" {
			filename = defaultUploadFilename
		}

		rows, err := parseUpload(content, filename)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Str("filename", filename).Err(err).Msg("upload")
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		result, err := importer.Create(models.DB, importer.Upload{
			Filename: filename,
			BankHint: c.PostForm("bank_hint"),
			Branch:   c.PostForm("branch"),
		}, rows)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		log.Info().Str("request-id", requestid.Get(c)).Uint("batch", result.BatchID).Int("inserted", result.Inserted).Int("skipped", result.SkippedDuplicates).Msg("upload")

		c.JSON(http.StatusOK, UploadFileResponse{OK: true, Result: result})
	}
}
