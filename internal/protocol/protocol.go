// Package protocol contains the wire vocabulary of the document database HTTP API:
// resource paths, query parameters, headers, JSON field names, server error numbers
// and the interpretation of responses into results or errors.
package protocol

const (
	PathDatabase      = "/_db/"
	PathAPIDocument   = "/_api/document"
	PathAPICollection = "/_api/collection"
	PathAPIVersion    = "/_api/version"

	PathChecksum      = "/checksum"
	PathDocumentCount = "/count"
	PathProperties    = "/properties"
	PathRename        = "/rename"
	PathRevision      = "/revision"
)

const (
	ParamDetails                = "details"
	ParamExcludeSystem          = "excludeSystem"
	ParamIgnoreRevisions        = "ignoreRevs"
	ParamIsSystem               = "isSystem"
	ParamKeepNull               = "keepNull"
	ParamMergeObjects           = "mergeObjects"
	ParamReturnNew              = "returnNew"
	ParamReturnOld              = "returnOld"
	ParamWaitForSync            = "waitForSync"
	ParamWaitForSyncReplication = "waitForSyncReplication"
	ParamWithData               = "withData"
	ParamWithRevisions          = "withRevisions"
)

const (
	HeaderIfMatch     = "If-Match"
	HeaderIfNoneMatch = "If-None-Match"
	HeaderETag        = "Etag"
	HeaderRequestID   = "X-Request-ID"
)

const (
	FieldCode         = "code"
	FieldError        = "error"
	FieldErrorNum     = "errorNum"
	FieldErrorMessage = "errorMessage"
	FieldID           = "id"
	FieldResult       = "result"

	FieldDocumentID          = "_id"
	FieldDocumentKey         = "_key"
	FieldDocumentRevision    = "_rev"
	FieldDocumentOldRevision = "_oldRev"
	FieldNew                 = "new"
	FieldOld                 = "old"
)

// ReturnType describes where the result of a successful call is found in the response body.
type ReturnType struct {
	// ResultField names the top level field holding the result. An empty ResultField means
	// the whole body is the result.
	ResultField string
}

// WholeBody is the ReturnType of calls whose entire response body is the result.
var WholeBody = ReturnType{}

// Field returns a ReturnType reading the result from the given top level field.
func Field(name string) ReturnType {
	return ReturnType{ResultField: name}
}
