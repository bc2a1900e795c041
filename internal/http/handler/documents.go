package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"arangodoc/internal/model"
	"arangodoc/internal/repository"
	"arangodoc/internal/service"
)

// MIMEApplicationJSONPatch is the media type of an RFC 6902 patch.
const MIMEApplicationJSONPatch = "application/json-patch+json"

// CreateDocuments godoc
// @Summary Insert documents
// @Description An object body inserts one document. An array body inserts a batch and answers
// @Description 207 with one result per element, in order.
// @Tags documents
// @Accept json
// @Produce json
// @Param collection path string true "collection name"
// @Param returnNew query bool false "echo the stored document"
// @Param waitForSync query bool false "wait until the write is synced to disk"
// @Param waitForSyncReplication query bool false "false lets a cluster answer before replicas are in sync"
// @Success 201 {object} model.WriteResult
// @Success 207 {array} model.ItemResult
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /collections/{collection}/documents [post]
func CreateDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		opts := repository.WriteOptions{
			ReturnNew:   c.QueryBool("returnNew", false),
			WaitForSync: c.QueryBool("waitForSync", false),

			SkipSyncReplication: !c.QueryBool("waitForSyncReplication", true),
		}

		if service.IsBatch(c.Body()) {
			items, err := docSvc.CreateMany(c.UserContext(), collection, c.Body(), opts)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.Status(fiber.StatusMultiStatus).JSON(items)
		}

		res, err := docSvc.Create(c.UserContext(), collection, c.Body(), opts)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, res.Revision)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param collection path string true "collection name"
// @Param key path string true "document key"
// @Param If-Match header string false "revision the document must have"
// @Param If-None-Match header string false "revision the caller already has"
// @Success 200 {object} map[string]interface{}
// @Success 304
// @Failure 404 {object} errorPayload
// @Failure 412 {object} errorPayload
// @Router /collections/{collection}/documents/{key} [get]
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cond := repository.ReadConditions{
			IfMatch:     revisionHeader(c, fiber.HeaderIfMatch),
			IfNoneMatch: revisionHeader(c, fiber.HeaderIfNoneMatch),
		}
		doc, err := docSvc.Get(c.UserContext(), c.Params("collection"), c.Params("key"), cond)
		if err != nil {
			return writeServiceError(c, err)
		}
		setETag(c, doc.Revision)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(doc.Body)
	}
}

// ReplaceDocument godoc
// @Summary Replace a document
// @Tags documents
// @Accept json
// @Produce json
// @Param collection path string true "collection name"
// @Param key path string true "document key"
// @Param If-Match header string false "revision the document must have"
// @Param rev query string false "revision embedded in the body, checked with ignoreRevs=false"
// @Param ignoreRevs query bool false "ignore the body revision" default(true)
// @Param returnOld query bool false "echo the previous document"
// @Param returnNew query bool false "echo the stored document"
// @Param waitForSyncReplication query bool false "false lets a cluster answer before replicas are in sync"
// @Success 200 {object} model.WriteResult
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 412 {object} errorPayload
// @Router /collections/{collection}/documents/{key} [put]
func ReplaceDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := docSvc.Replace(c.UserContext(), c.Params("collection"), c.Params("key"), c.Body(), writeOptions(c))
		return writeResult(c, res, err)
	}
}

// UpdateDocument godoc
// @Summary Update a document
// @Description A JSON body is merged into the document. A JSON Patch body is applied to the
// @Description current document, which is written back only if it did not change meanwhile.
// @Tags documents
// @Accept json
// @Accept json-patch+json
// @Produce json
// @Param collection path string true "collection name"
// @Param key path string true "document key"
// @Param If-Match header string false "revision the document must have"
// @Param keepNull query bool false "store null attributes instead of removing them" default(true)
// @Param mergeObjects query bool false "merge nested objects instead of replacing them" default(true)
// @Param returnOld query bool false "echo the previous document"
// @Param returnNew query bool false "echo the stored document"
// @Param waitForSyncReplication query bool false "false lets a cluster answer before replicas are in sync"
// @Success 200 {object} model.WriteResult
// @Failure 404 {object} errorPayload
// @Failure 412 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /collections/{collection}/documents/{key} [patch]
func UpdateDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts := writeOptions(c)
		collection, key := c.Params("collection"), c.Params("key")

		if strings.HasPrefix(c.Get(fiber.HeaderContentType), MIMEApplicationJSONPatch) {
			res, err := docSvc.Patch(c.UserContext(), collection, key, c.Body(), opts)
			return writeResult(c, res, err)
		}

		opts.DropNull = !c.QueryBool("keepNull", true)
		opts.ReplaceObjects = !c.QueryBool("mergeObjects", true)
		res, err := docSvc.Update(c.UserContext(), collection, key, c.Body(), opts)
		return writeResult(c, res, err)
	}
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param collection path string true "collection name"
// @Param key path string true "document key"
// @Param If-Match header string false "revision the document must have"
// @Param returnOld query bool false "echo the removed document"
// @Param waitForSyncReplication query bool false "false lets a cluster answer before replicas are in sync"
// @Success 200 {object} model.WriteResult
// @Failure 404 {object} errorPayload
// @Failure 412 {object} errorPayload
// @Router /collections/{collection}/documents/{key} [delete]
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		opts := repository.WriteOptions{
			IfMatch:     revisionHeader(c, fiber.HeaderIfMatch),
			ReturnOld:   c.QueryBool("returnOld", false),
			WaitForSync: c.QueryBool("waitForSync", false),

			SkipSyncReplication: !c.QueryBool("waitForSyncReplication", true),
		}
		res, err := docSvc.Delete(c.UserContext(), c.Params("collection"), c.Params("key"), opts)
		return writeResult(c, res, err)
	}
}

func writeOptions(c *fiber.Ctx) repository.WriteOptions {
	rev := c.Query("rev")
	return repository.WriteOptions{
		IfMatch:       revisionHeader(c, fiber.HeaderIfMatch),
		Revision:      rev,
		CheckRevision: rev != "" && !c.QueryBool("ignoreRevs", true),
		ReturnOld:     c.QueryBool("returnOld", false),
		ReturnNew:     c.QueryBool("returnNew", false),
		WaitForSync:   c.QueryBool("waitForSync", false),

		SkipSyncReplication: !c.QueryBool("waitForSyncReplication", true),
	}
}

func writeResult(c *fiber.Ctx, res *model.WriteResult, err error) error {
	if err != nil {
		return writeServiceError(c, err)
	}
	setETag(c, res.Revision)
	return c.JSON(res)
}

// revisionHeader reads a revision from a conditional header, with or without quotes.
func revisionHeader(c *fiber.Ctx, name string) string {
	v := strings.TrimSpace(c.Get(name))
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}

func setETag(c *fiber.Ctx, rev string) {
	if rev != "" {
		c.Set(fiber.HeaderETag, `"`+rev+`"`)
	}
}
