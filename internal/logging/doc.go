// Package logging provides structured logging for the tti CLI.
//
// This package wraps zap with convenience functions for the logging patterns
// used across the codec and CLI. Output goes to stderr so it never mixes
// with decoded bytes or hex dumps written to stdout.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (block headers, padding arithmetic, hex dumps)
//   - Info: Normal operations (files read, images written)
//   - Warn: Non-fatal issues (lossy source image formats)
//   - Error: Fatal issues (framing failures, unwritable outputs)
//
// # Configuration
//
// Logging is silent by default. Set TTI_LOG_LEVEL to enable it:
//
//	TTI_LOG_LEVEL=debug tti encode input.bin out.png
//
// Commands initialize it once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Raw Byte Dumps
//
// LogRawBytes emits a bounded hex and ASCII dump of a byte slice at debug
// level, which is the main tool for diagnosing framing issues:
//
//	logging.LogRawBytes("flattened pixels", data)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
