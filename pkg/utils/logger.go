package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents the workspace logger.
type Logger struct {
	logger                 *log.Logger
	userInteractionEnabled bool
	jsonMode               bool
	correlationID          string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton instance of Logger, backed by a rotating log
// file under .aitutor. The skipPrompts parameter controls user interaction and
// can be overridden on subsequent calls.
func GetLogger(skipPrompts bool) *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".aitutor/aitutor.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	globalLogger.userInteractionEnabled = !skipPrompts
	if os.Getenv("AITUTOR_JSON_LOGS") == "1" {
		globalLogger.jsonMode = true
	}
	if cid := os.Getenv("AITUTOR_CORRELATION_ID"); cid != "" {
		globalLogger.correlationID = cid
	}
	return globalLogger
}

// EnableJSONLogs switches the logger to structured JSON output. The
// AITUTOR_JSON_LOGS environment variable enables the same mode.
func (w *Logger) EnableJSONLogs() {
	w.jsonMode = true
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// LogProcessStep logs the current step in a process and echoes it to stdout.
func (w *Logger) LogProcessStep(step string) {
	w.logger.Printf("Process Step: %s", step)
	fmt.Println(step)
}

// LogUserInteraction logs messages that require a user response and prints them.
func (w *Logger) LogUserInteraction(message string) {
	w.logger.Printf("User Interaction: %s", message)
	fmt.Print(message)
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}

// AskForConfirmation prompts the user with a message and waits for a 'yes' or
// 'no' response. In non-interactive mode the default is returned.
func (w *Logger) AskForConfirmation(prompt string, defaultResponse bool) bool {
	if !w.userInteractionEnabled {
		w.Log("Skipping user confirmation in non-interactive mode.")
		return defaultResponse
	}
	reader := bufio.NewReader(os.Stdin)
	for {
		w.LogUserInteraction(fmt.Sprintf("%s (yes/no): ", prompt))
		response, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(response)) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		default:
			w.LogUserInteraction("Invalid input. Please type 'yes' or 'no'.\n")
		}
	}
}
