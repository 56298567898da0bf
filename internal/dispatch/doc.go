// Package dispatch sends one notification end to end: resolve the API
// endpoint, assemble the form body, frame the HTTP request, deliver it over
// TLS and check the response status line.
package dispatch
