// Package httputil provides the JSON plumbing shared by the HTTP API.
//
// # Overview
//
//   - [DecodeJSON]: strict request decoding with a body size limit
//   - [WriteJSON]: response encoding
//   - [WriteError]: maps [errors.Code] values to HTTP status codes
//
// Errors are written as
//
//	{"error": {"code": "INVALID_INPUT", "message": "declarations cannot be empty"}}
//
// so clients can switch on the code without parsing messages.
//
// # Status mapping
//
//   - INVALID_INPUT, INVALID_PATH: 400
//   - PLUGIN_NOT_FOUND, FILE_NOT_FOUND: 404
//   - INVALID_CONFIG, INVALID_OVERRIDE: 422
//   - UNSUPPORTED: 501
//   - anything else: 500
package httputil
