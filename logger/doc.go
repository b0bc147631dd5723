// Package logger provides structured logging for gomonzo using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("monzo").WithComponent("httpclient")
//	log.Debug("request completed", logger.Fields("status", 200))
package logger
