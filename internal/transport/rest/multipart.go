package rest

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
)

// Attachment is a supporting document sent alongside a financial request.
type Attachment struct {
	Name    string `json:"name"`
	Content []byte `json:"-"`
}

// PostMultipart submits fields plus document attachments as multipart
// form data. Services only use it when the documents slice is non-empty;
// plain JSON is used otherwise.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, documents []Attachment, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	for _, doc := range documents {
		part, err := writer.CreateFormFile("documents", doc.Name)
		if err != nil {
			return err
		}
		if _, err := part.Write(doc.Content); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf, out)
}
