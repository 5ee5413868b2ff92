// Package inference adapts the external model service the store proxies
// prediction requests to. The model itself is opaque: image bytes in, one
// global label with a confidence fraction out.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"retinoscope/annotation"
)

type Service struct {
	url  string
	http *http.Client
}

// New Create an adapter for the inference service at url.
func New(url string) *Service {
	return &Service{
		url:  url,
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

// Predict Send the image to the inference service as a multipart upload.
func (s *Service) Predict(ctx context.Context, image []byte) (annotation.Prediction, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return annotation.Prediction{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return annotation.Prediction{}, fmt.Errorf("copy image data: %w", err)
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return annotation.Prediction{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.http.Do(req)
	if err != nil {
		return annotation.Prediction{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return annotation.Prediction{}, fmt.Errorf("inference failed with status: %d", resp.StatusCode)
	}

	var prediction annotation.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return annotation.Prediction{}, fmt.Errorf("decode response: %w", err)
	}
	return prediction, nil
}

// CheckHealth Probe the inference service
func (s *Service) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference service unhealthy: %d", resp.StatusCode)
	}
	return nil
}
