package protocol

import "strconv"

// ErrorCode is a server error number as carried in the errorNum field of an error envelope.
//
// Only the numbers this client reasons about are named. Any other number is kept as is so
// that errors introduced by newer servers still surface with their raw value.
type ErrorCode int

const (
	NoError ErrorCode = 0
	Failed  ErrorCode = 1

	// Numbers mirroring HTTP statuses. They are also used when a response carries no envelope.
	HTTPNotModified        ErrorCode = 304
	HTTPBadParameter       ErrorCode = 400
	HTTPUnauthorized       ErrorCode = 401
	HTTPForbidden          ErrorCode = 403
	HTTPNotFound           ErrorCode = 404
	HTTPMethodNotAllowed   ErrorCode = 405
	HTTPPreconditionFailed ErrorCode = 412
	HTTPServerError        ErrorCode = 500
	HTTPServiceUnavailable ErrorCode = 503
	HTTPCorruptedJSON      ErrorCode = 600

	ArangoConflict                   ErrorCode = 1200
	ArangoDocumentNotFound           ErrorCode = 1202
	ArangoCollectionNotFound         ErrorCode = 1203
	ArangoCollectionParameterMissing ErrorCode = 1204
	ArangoDocumentHandleBad          ErrorCode = 1205
	ArangoDuplicateName              ErrorCode = 1207
	ArangoIllegalName                ErrorCode = 1208
	ArangoUniqueConstraintViolated   ErrorCode = 1210
	ArangoDocumentKeyBad             ErrorCode = 1221
	ArangoDocumentKeyUnexpected      ErrorCode = 1222
	ArangoDocumentTypeInvalid        ErrorCode = 1227
	ArangoDatabaseNotFound           ErrorCode = 1228
	ArangoDatabaseNameInvalid        ErrorCode = 1229
)

var errorCodeNames = map[ErrorCode]string{
	NoError:                          "NoError",
	Failed:                           "Failed",
	HTTPNotModified:                  "HttpNotModified",
	HTTPBadParameter:                 "HttpBadParameter",
	HTTPUnauthorized:                 "HttpUnauthorized",
	HTTPForbidden:                    "HttpForbidden",
	HTTPNotFound:                     "HttpNotFound",
	HTTPMethodNotAllowed:             "HttpMethodNotAllowed",
	HTTPPreconditionFailed:           "HttpPreconditionFailed",
	HTTPServerError:                  "HttpServerError",
	HTTPServiceUnavailable:           "HttpServiceUnavailable",
	HTTPCorruptedJSON:                "HttpCorruptedJson",
	ArangoConflict:                   "ArangoConflict",
	ArangoDocumentNotFound:           "ArangoDocumentNotFound",
	ArangoCollectionNotFound:         "ArangoCollectionNotFound",
	ArangoCollectionParameterMissing: "ArangoCollectionParameterMissing",
	ArangoDocumentHandleBad:          "ArangoDocumentHandleBad",
	ArangoDuplicateName:              "ArangoDuplicateName",
	ArangoIllegalName:                "ArangoIllegalName",
	ArangoUniqueConstraintViolated:   "ArangoUniqueConstraintViolated",
	ArangoDocumentKeyBad:             "ArangoDocumentKeyBad",
	ArangoDocumentKeyUnexpected:      "ArangoDocumentKeyUnexpected",
	ArangoDocumentTypeInvalid:        "ArangoDocumentTypeInvalid",
	ArangoDatabaseNotFound:           "ArangoDatabaseNotFound",
	ArangoDatabaseNameInvalid:        "ArangoDatabaseNameInvalid",
}

// String returns the name of a known error number or ErrorCode(n) for unknown ones.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Known reports whether the error number is one of the named codes.
func (c ErrorCode) Known() bool {
	_, ok := errorCodeNames[c]
	return ok
}

// HTTPStatus returns the HTTP status the server uses for the error number. It serves element
// errors of batch responses, which carry no status of their own.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ArangoDocumentNotFound, ArangoCollectionNotFound, ArangoDatabaseNotFound:
		return 404
	case ArangoConflict, ArangoUniqueConstraintViolated, ArangoDuplicateName:
		return 409
	case ArangoCollectionParameterMissing, ArangoDocumentHandleBad, ArangoIllegalName,
		ArangoDocumentKeyBad, ArangoDocumentKeyUnexpected, ArangoDocumentTypeInvalid,
		ArangoDatabaseNameInvalid, HTTPCorruptedJSON:
		return 400
	}
	if c >= 100 && c < 600 {
		return int(c)
	}
	return 500
}
