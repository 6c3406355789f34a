package internal

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const imagePromptSystem = `You are an AI assistant specializing in generating image creation prompts. Based on the user's description, create a detailed and imaginative prompt suitable for an AI image generation model. Reply with the prompt only.`

// OpenAIAssistant implements the Assistant boundary against the OpenAI
// API. The conversation core never sees these types; it depends only on
// the Assistant interface.
type OpenAIAssistant struct {
	client     *openai.Client
	chatModel  string
	imageModel string
}

// NewOpenAIAssistant creates an assistant using the given API key.
func NewOpenAIAssistant(apiKey string) *OpenAIAssistant {
	return &OpenAIAssistant{
		client:     openai.NewClient(apiKey),
		chatModel:  openai.GPT4oMini,
		imageModel: openai.CreateImageModelDallE3,
	}
}

// GenerateReply produces the model's answer for the assembled turns.
func (a *OpenAIAssistant) GenerateReply(ctx context.Context, turns []ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		role := openai.ChatMessageRoleAssistant
		if turn.Sender == SenderUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Text,
		})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.chatModel,
		Messages: messages,
	})
	if err != nil {
		return "", &RemoteError{Op: "reply", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &RemoteError{Op: "reply", Err: fmt.Errorf("no choices returned")}
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImagePrompt turns a description into an image generation prompt.
func (a *OpenAIAssistant) GenerateImagePrompt(ctx context.Context, description string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: imagePromptSystem},
			{Role: openai.ChatMessageRoleUser, Content: description},
		},
	})
	if err != nil {
		return "", &RemoteError{Op: "imagePrompt", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImage renders a prompt into an image. Failures come back in the
// tagged result, never as an error.
func (a *OpenAIAssistant) GenerateImage(ctx context.Context, prompt string) ImageResult {
	resp, err := a.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          a.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return ImageResult{Err: "AI Image Generation Error: " + err.Error()}
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return ImageResult{Err: "AI Image Generation Error: Image generation failed to return media."}
	}
	return ImageResult{DataURI: "data:image/png;base64," + resp.Data[0].B64JSON}
}

// Translate renders text into the target language.
func (a *OpenAIAssistant) Translate(ctx context.Context, text, languageCode string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following text to %s. Reply with the translation only:\n\n%s", LanguageLabel(languageCode), text),
			},
		},
	})
	if err != nil {
		return "", &RemoteError{Op: "translate", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &RemoteError{Op: "translate", Err: fmt.Errorf("no choices returned")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
