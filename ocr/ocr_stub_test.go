//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubNew(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got %v", err)
	}
	if client != nil {
		t.Error("Expected nil client from stub")
	}
}

func TestStubClose(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}

func TestStubRecognizeImage(t *testing.T) {
	client := &Client{}
	_, err := client.RecognizeImage([]byte("not an image"))
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got %v", err)
	}
}

func TestStubSetLanguage(t *testing.T) {
	client := &Client{}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got %v", err)
	}
}
