// Package server provides the HTTP server behind the serve command.
//
// The server uses the Gin web framework and listens on plain HTTP. It is
// meant for a single user on a local machine and carries no
// authentication.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request logging, "http" logger)         │  │
//	│  │  ginzap.RecoveryWithZap (panic recovery)                │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	│  Unknown routes → 404 JSON error                              │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
//   - dev: Gin runs in debug mode and prints its route table
//   - prod: Gin runs in release mode
//
// Any other mode is rejected by NewServer.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	// Blocks until ctx is cancelled, then shuts down gracefully.
//	err = srv.Start(ctx)
package server
