package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"constructdocs/internal/http/middleware"
	"constructdocs/internal/model"
	"constructdocs/internal/service"
)

// UploadDocument handles POST /documents. Multipart fields: file, type
// (category), projectId, constructionId and an optional version that fills an
// earlier version bucket instead of starting a new one.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		version := 0
		if v := c.FormValue("version"); v != "" {
			version, err = strconv.Atoi(v)
			if err != nil || version < 1 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_VERSION", "version must be a positive integer")
			}
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), middleware.RoleFromCtx(c), service.UploadInput{
			File: service.FileInput{
				Reader:       f,
				OriginalName: fh.Filename,
				ContentType:  fh.Header.Get("Content-Type"),
				Size:         fh.Size,
			},
			Category:       model.Category(c.FormValue("type")),
			ConstructionID: c.FormValue("constructionId"),
			ProjectID:      c.FormValue("projectId"),
			Version:        version,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ReplaceDocument handles PUT /documents/:id. The response carries the new
// document so the caller can report "created version vN".
func ReplaceDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Replace(c.UserContext(), middleware.RoleFromCtx(c), id, service.FileInput{
			Reader:       f,
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// GetDocument handles GET /documents/:id.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), middleware.RoleFromCtx(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DownloadDocument handles GET /documents/:id/download and returns a
// time-limited presigned URL; the bytes stream straight from object storage.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.DownloadURL(c.UserContext(), middleware.RoleFromCtx(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteDocument handles DELETE /documents/:id. Repeat deletes of the same id
// report NOT_FOUND.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), middleware.RoleFromCtx(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListConstructionDocuments handles GET /constructions/:id/documents,
// returning the flat document set. Clients group into versions themselves or
// use the /versions endpoint.
func ListConstructionDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListByConstruction(c.UserContext(), middleware.RoleFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// ListConstructionVersions handles GET /constructions/:id/documents/versions,
// returning documents grouped by version and category, newest first.
func ListConstructionVersions(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := svc.Versions(c.UserContext(), middleware.RoleFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(groups)
	}
}

// ListProjectDocuments handles GET /projects/:id/documents.
func ListProjectDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListByProject(c.UserContext(), middleware.RoleFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}
