package logger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// AuditLogger records one CSV row per handled action endpoint invocation.
// Rows carry: timestamp, endpoint, status, detail, resource id. The file is
// created in the system temp directory, one file per day.
//
// Filename pattern: _iftttbridge_audit_{date}.csv
type AuditLogger struct {
	mu        sync.Mutex
	writer    *csv.Writer
	file      *os.File
	rowCount  int
	lastFlush time.Time
}

// NewAuditLogger opens (or creates, append mode) the audit file for today.
func NewAuditLogger() (*AuditLogger, error) {
	dateStr := time.Now().Format("2006-01-02")
	fileName := fmt.Sprintf("_iftttbridge_audit_%s.csv", dateStr)
	filePath := filepath.Join(os.TempDir(), fileName)

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not create audit log file: %w", err)
	}

	return &AuditLogger{
		writer:    csv.NewWriter(file),
		file:      file,
		lastFlush: time.Now(),
	}, nil
}

// Record writes one audit row. The timestamp is prepended automatically.
// Rows are flushed every 10 rows or every 5 seconds. Unlike the per-request
// handlers, the audit file is shared, so writes are serialized.
func (l *AuditLogger) Record(endpoint, status, detail, id string) error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return fmt.Errorf("audit writer is not initialized")
	}

	row := []string{time.Now().Format("2006-01-02 15:04:05"), endpoint, status, detail, id}
	if err := l.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write audit row: %w", err)
	}

	l.rowCount++
	if l.rowCount%10 == 0 || time.Since(l.lastFlush) > 5*time.Second {
		l.writer.Flush()
		l.lastFlush = time.Now()
		if err := l.writer.Error(); err != nil {
			return fmt.Errorf("failed to flush audit log: %w", err)
		}
	}

	return nil
}

// Close flushes any buffered rows and closes the underlying file.
func (l *AuditLogger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer != nil {
		l.writer.Flush()
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
