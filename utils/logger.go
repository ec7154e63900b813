package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// InfoLogger logs informational messages
	InfoLogger *log.Logger
	// ErrorLogger logs error messages
	ErrorLogger *log.Logger
	// DebugLogger logs debug messages
	DebugLogger *log.Logger
)

// InitLogger initializes the file-backed loggers, one file per level per day.
func InitLogger() error {
	logsDir := os.Getenv("LOG_DIR")
	if logsDir == "" {
		logsDir = "logs"
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	open := func(level string) (*os.File, error) {
		return os.OpenFile(
			filepath.Join(logsDir, fmt.Sprintf("%s-%s.log", level, timestamp)),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0644,
		)
	}

	infoFile, err := open("info")
	if err != nil {
		return fmt.Errorf("failed to open info log file: %v", err)
	}
	errorFile, err := open("error")
	if err != nil {
		return fmt.Errorf("failed to open error log file: %v", err)
	}
	debugFile, err := open("debug")
	if err != nil {
		return fmt.Errorf("failed to open debug log file: %v", err)
	}

	InfoLogger = log.New(infoFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(errorFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(debugFile, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Printf(format, v...)
	}
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	LogInfo("Request: %s %s from %s - Status: %d - Duration: %v", method, path, ip, status, duration)
}

// LogErrorWithStack logs an error with its stack trace
func LogErrorWithStack(err error, stack []byte) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("Error: %v\nStack Trace:\n%s", err, stack)
	}
}
