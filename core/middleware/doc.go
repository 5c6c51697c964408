// Package middleware contains HTTP middleware for the sandbox Fiber application.
//
// # Components
//
//   - auth: validates the "Authorization: Token <token>" header the way the
//     inventory API does, answering 403 with a JSON detail otherwise.
//   - rayid: assigns every request a unique ray id (or keeps the caller's
//     X-Ray-ID), stores it in the context locals and echoes it in the response.
//
// RayID must be registered first so every log line of a request carries it.
package middleware
