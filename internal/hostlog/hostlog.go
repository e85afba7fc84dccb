// Package hostlog holds the package loggers used by host-side builds.
package hostlog

import logger "github.com/d2r2/go-logger"

const pkgName = "gatedrive"

// Log is the module logger.
var Log = logger.NewPackageLogger(pkgName, logger.InfoLevel)

// SetDebug switches the module logger between debug and info level.
func SetDebug(on bool) error {
	lvl := logger.InfoLevel
	if on {
		lvl = logger.DebugLevel
	}
	return logger.ChangePackageLogLevel(pkgName, lvl)
}

// QuietI2C lowers the go-i2c package logger, which logs every transfer at debug level.
func QuietI2C() error {
	return logger.ChangePackageLogLevel("i2c", logger.InfoLevel)
}

// Close flushes and releases the logger backends.
func Close() { logger.FinalizeLogger() }
