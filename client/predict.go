package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"retinoscope/annotation"
)

// Predict Upload raw image bytes to the prediction endpoint and decode the
// global label. Confidence is a fraction in [0,1].
func (c *Client) Predict(ctx context.Context, image []byte) (annotation.Prediction, error) {
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

	u := fmt.Sprintf("%s/api/v1/predict", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return annotation.Prediction{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return annotation.Prediction{}, fmt.Errorf("predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return annotation.Prediction{}, fmt.Errorf("predict: status %d", resp.StatusCode)
	}

	var prediction annotation.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return annotation.Prediction{}, fmt.Errorf("decode prediction: %w", err)
	}
	return prediction, nil
}
