package attachments

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ativos.GO/api"
	"ativos.GO/config"
	coreAuth "ativos.GO/core/auth"
	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
	assetRepo "ativos.GO/model/repository/asset"
	attachmentRepo "ativos.GO/model/repository/attachment"
	"ativos.GO/service/audit"
	"ativos.GO/service/media"
)

// allowedExtensions limits uploads to photos and common documents.
var allowedExtensions = map[string]string{
	".png":  entity.AttachmentPhoto,
	".jpg":  entity.AttachmentPhoto,
	".jpeg": entity.AttachmentPhoto,
	".gif":  entity.AttachmentPhoto,
	".pdf":  entity.AttachmentDocument,
	".doc":  entity.AttachmentDocument,
	".docx": entity.AttachmentDocument,
	".xls":  entity.AttachmentDocument,
	".xlsx": entity.AttachmentDocument,
}

func RegisterAttachmentRoutes(apiGroup *echo.Group, db *gorm.DB) {
	assets := assetRepo.NewAssetRepository(db)
	attachments := attachmentRepo.NewAttachmentRepository(db)
	recorder := audit.NewRecorder(db)

	assetGroup := apiGroup.Group("/assets/:id/attachments")
	fileGroup := apiGroup.Group("/attachments")

	// GET /api/assets/:id/attachments – list, primary photo first
	assetGroup.GET("", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := assets.FindByID(id); err != nil {
			return api.Error(c, err)
		}
		list, err := attachments.ListByAsset(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"attachments": list, "count": len(list)})
	})

	// POST /api/assets/:id/attachments – multipart upload; photos get a
	// thumbnail alongside the original
	assetGroup.POST("", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		if _, err := assets.FindByID(id); err != nil {
			return api.Error(c, err)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field is required"})
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		kind, ok := allowedExtensions[ext]
		if !ok {
			return api.Error(c, errs.Validationf("file type %q not allowed", ext))
		}
		maxBytes := int64(config.AppConfig.MaxUploadMB) << 20
		if fh.Size > maxBytes {
			return api.Error(c, errs.Validationf("file exceeds %d MB limit", config.AppConfig.MaxUploadMB))
		}

		dir := filepath.Join(config.AppConfig.UploadDir, fmt.Sprint(id))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return api.Error(c, err)
		}
		name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
		dst := filepath.Join(dir, name)
		if err := saveUpload(fh, dst); err != nil {
			return api.Error(c, err)
		}

		if kind == entity.AttachmentPhoto {
			if _, err := media.MakeThumbnail(dst); err != nil {
				log.Printf("thumbnail for %s: %v", dst, err)
			}
		}

		att := &entity.Attachment{
			AssetID:     id,
			Kind:        kind,
			FileName:    fh.Filename,
			Path:        dst,
			Size:        fh.Size,
			MimeType:    fh.Header.Get("Content-Type"),
			Description: c.FormValue("description"),
		}
		if err := attachments.Create(att); err != nil {
			return api.Error(c, err)
		}
		if err := recorder.Record(audit.Entry{
			AssetID: id, Action: "attachment_added", NewValue: fh.Filename,
			Actor: coreAuth.ActorName(c), SourceIP: c.RealIP(),
		}); err != nil {
			log.Printf("history for asset %d: %v", id, err)
		}
		return c.JSON(http.StatusCreated, att)
	})

	// PUT /api/assets/:id/attachments/:attID/primary – mark primary photo
	assetGroup.PUT("/:attID/primary", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		attID, err := api.IDParam(c, "attID")
		if err != nil {
			return api.Error(c, err)
		}
		if err := attachments.SetPrimary(id, attID); err != nil {
			return api.Error(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"primary": attID})
	})

	// GET /api/attachments/:id/download – stream the stored file
	fileGroup.GET("/:id/download", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		att, err := attachments.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		return c.Attachment(att.Path, att.FileName)
	})

	// DELETE /api/attachments/:id – remove record and files
	fileGroup.DELETE("/:id", func(c echo.Context) error {
		id, err := api.IDParam(c, "id")
		if err != nil {
			return api.Error(c, err)
		}
		att, err := attachments.FindByID(id)
		if err != nil {
			return api.Error(c, err)
		}
		if err := attachments.Delete(id); err != nil {
			return api.Error(c, err)
		}
		removeFiles(att)
		if err := recorder.Record(audit.Entry{
			AssetID: att.AssetID, Action: "attachment_removed", OldValue: att.FileName,
			Actor: coreAuth.ActorName(c), SourceIP: c.RealIP(),
		}); err != nil {
			log.Printf("history for asset %d: %v", att.AssetID, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"deleted": id})
	})
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}

// removeFiles deletes the stored file and, for photos, its thumbnail.
// Missing files are ignored.
func removeFiles(att *entity.Attachment) {
	os.Remove(att.Path)
	if att.Kind == entity.AttachmentPhoto {
		ext := filepath.Ext(att.Path)
		os.Remove(strings.TrimSuffix(att.Path, ext) + "_thumb" + ext)
	}
}
