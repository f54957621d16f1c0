// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: X-API-Key validation, disabled when no key is configured.
//   - rayid: assigns every request a ray id, stored in the context and echoed
//     in the X-Ray-ID response header for tracing.
package middleware
