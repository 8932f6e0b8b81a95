// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Routes are grouped into modules ([AuthModule], [UserModule], the docs
// module and the meta module) mounted on one chi router. Cross-cutting
// concerns such as request tracing, access logging, metrics, CORS, security
// headers, rate limiting and authentication are handled in this package
// before requests are delegated to the service layer.
package http
