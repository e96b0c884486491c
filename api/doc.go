// Package api hosts the HTTP surface of the server.
//
// Routes:
//
//   - GET    /            greeting, text/plain
//   - GET    /healthz     liveness
//   - GET    /metrics     Prometheus metrics
//   - GET    /api/todos   full list as a JSON array
//   - POST   /api/todos   create
//   - GET    /api/todos/:id
//   - PUT    /api/todos/:id
//   - DELETE /api/todos/:id
//
// Handlers stay unaware of the listening socket; NewServer wires them onto
// a fiber app and main owns listen/shutdown. Errors surface as
// {"error": message} JSON with the matching status code.
package api
