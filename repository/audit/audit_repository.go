package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AuditRepository appends one line per mutating action to a daily log file:
// timestamp,method,actor,action. The directory is created on first write.
type AuditRepository interface {
	Append(actor, method, action string) error
}

type fileAudit struct {
	dir string
}

func NewAuditRepository(dir string) AuditRepository {
	return &fileAudit{dir: dir}
}

func (f *fileAudit) Append(actor, method, action string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	filename := filepath.Join(f.dir, now.Format("2006-01-02")+".log")

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	line := fmt.Sprintf("%s,%s,%s,%s\n", now.Format("2006-01-02 15:04:05"), method, actor, action)
	_, err = file.WriteString(line)
	return err
}
