// Package client provides a typed HTTP client for the notekeeper API.
//
// The client wraps resty, keeps the bearer token obtained from registration
// or login, and decodes the JSON envelope returned by every endpoint. The
// envelope's error flag is authoritative: a reply is treated as a failure
// whenever the flag is set, regardless of the HTTP status code.
package client
