// Package logger provides structured logging based on Zap.
//
// New builds a development logger for the debug level and a production logger
// otherwise, encoded as console or JSON. WithRayID attaches the request ray id
// stored by the rayid middleware so every line of a request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Model load failed", zap.Error(err))
package logger
