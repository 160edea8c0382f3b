package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	cerrors "github.com/rentconnect/rentconnect-api/utils/errors"
)

// Envelope is the uniform wrapper for every business outcome, success or
// failure.
type Envelope struct {
	Payload       any            `json:"payload"`
	Status        EnvelopeStatus `json:"status"`
	PreparedBy    string         `json:"prepared_by"`
	DateGenerated time.Time      `json:"date_generated"`
}

type EnvelopeStatus struct {
	Remark  string `json:"remark"`
	Message string `json:"message"`
}

// RouterError is the distinct shape for router-level failures: bad JSON,
// missing id, unauthorized, unknown endpoint, wrong method, panics.
type RouterError struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeEnvelope(w http.ResponseWriter, preparedBy string, payload any, remark, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{
		Payload:       payload,
		Status:        EnvelopeStatus{Remark: remark, Message: message},
		PreparedBy:    preparedBy,
		DateGenerated: time.Now(),
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(RouterError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// writeAppError renders an application error as a failed envelope, keeping
// the error's HTTP status.
func (s *RestHandler) writeAppError(w http.ResponseWriter, err error) {
	var ce cerrors.CustomError
	if stderrors.As(err, &ce) {
		writeEnvelope(w, s.preparedBy, nil, "failed", ce.Error(), ce.ErrorHTTPCode())
		return
	}
	writeEnvelope(w, s.preparedBy, nil, "failed", "Internal server error", http.StatusInternalServerError)
}
