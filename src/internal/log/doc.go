// Package log provides simple leveled logging for hostsmith.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, SUCCESS, WARN, and ERROR.
// It provides global logging functions that can be used throughout the application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - SUCCESS: End-of-run success reporting (green output)
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Merging %d sources", len(sources))
//	log.Warnf("Whitelist file not found at %s", path)
//	log.Errorf("Failed to write hosts file: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Detailed trace: %+v", data)
//
// Fatal errors that exit the application:
//
//	if err != nil {
//	    log.Fatalf("Critical error: %v", err) // Exits with code 1
//	}
package log
