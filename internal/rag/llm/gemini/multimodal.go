package gemini

import (
	"bytes"
	"context"

	"github.com/startup-advisor/backend/internal/domain/advice"
	"google.golang.org/genai"
)

func (c *llmClient) GenerateWithImage(ctx context.Context, question string, image []byte, mimeType, language string) advice.ModalResult {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(imageSystemPrompt(language)),
		genai.NewPartFromText(question),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)

	answer, err := c.generate(ctx, []*genai.Content{content})
	if err != nil {
		logger.Error("Image generation failed", "error", err)
		return advice.ModalResult{Answer: apology(apologyImage, language, err)}
	}
	return advice.ModalResult{Answer: answer, Success: true}
}

func (c *llmClient) GenerateWithFile(ctx context.Context, question string, file []byte, filename, mimeType, language string) advice.ModalResult {
	// Documents go through the provider's file storage first; the prompt
	// then references the upload rather than carrying the bytes inline.
	uploaded, err := c.client.Files.Upload(ctx, bytes.NewReader(file), &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: filename,
	})
	if err != nil {
		logger.Error("File upload failed", "filename", filename, "error", err)
		return advice.ModalResult{Answer: apology(apologyFile, language, err)}
	}

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(fileSystemPrompt(language)),
		genai.NewPartFromURI(uploaded.URI, uploaded.MIMEType),
		genai.NewPartFromText(question),
	}, genai.RoleUser)

	answer, err := c.generate(ctx, []*genai.Content{content})
	if err != nil {
		logger.Error("File generation failed", "filename", filename, "error", err)
		return advice.ModalResult{Answer: apology(apologyFile, language, err)}
	}
	return advice.ModalResult{Answer: answer, Success: true}
}
