package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	recorder := httptest.NewRecorder()
	payload := map[string]any{"error": false, "message": "ok"}

	written, err := WriteJSON(recorder, payload, http.StatusCreated)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if written == 0 {
		t.Error("expected non-zero bytes written")
	}

	if recorder.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", contentType)
	}

	var decoded map[string]any
	if err = json.Unmarshal(recorder.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if decoded["message"] != "ok" {
		t.Errorf("expected message 'ok', got %v", decoded["message"])
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON.
	_, err := WriteJSON(recorder, make(chan int), http.StatusOK)
	if err == nil {
		t.Fatal("expected error for unmarshalable data, got nil")
	}
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
