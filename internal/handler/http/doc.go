// Package http implements the HTTP transport layer of the blog.
//
// It serves two surfaces from one chi router:
//   - HTML pages for browsers, authenticated with a signed session cookie
//     (registration, login, the post list and the post editor);
//   - a JSON REST API under /api, authenticated with HTTP Basic credentials
//     for token issuance and with bearer API tokens everywhere else.
//
// Request tracing, access logging, panic recovery and response compression
// are handled by middleware before requests reach the service layer. Errors
// are rendered as HTML pages or as {"error","message"} JSON depending on the
// request.
package http
