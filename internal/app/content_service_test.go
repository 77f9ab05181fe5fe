package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
)

func TestContentService_GenerateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       content.Request
		wantModel string
		want      string
	}{
		{
			name:      "default model",
			req:       content.Request{Input: "route summary"},
			wantModel: "gpt",
			want:      "GPT generated text based on: route summary",
		},
		{
			name:      "named model",
			req:       content.Request{Model: "claude", Input: "route summary"},
			wantModel: "claude",
			want:      "Claude generated text based on: route summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewContentService(content.NewRegistry(), nil, discardLogger())

			got, err := svc.GenerateText(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("GenerateText() error = %v, want nil", err)
			}
			if got.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", got.Model, tt.wantModel)
			}
			if got.Result != tt.want {
				t.Errorf("Result = %q, want %q", got.Result, tt.want)
			}
		})
	}
}

func TestContentService_GenerateImage(t *testing.T) {
	t.Parallel()

	svc := NewContentService(content.NewRegistry(), nil, nil)

	got, err := svc.GenerateImage(context.Background(), content.Request{Model: "claude", Input: "a truck"})
	if err != nil {
		t.Fatalf("GenerateImage() error = %v, want nil", err)
	}
	if got.Result != "https://images.local/claude?prompt=a+truck" {
		t.Errorf("Result = %q", got.Result)
	}
}

func TestContentService_Errors(t *testing.T) {
	t.Parallel()

	svc := NewContentService(content.NewRegistry(), nil, discardLogger())

	_, err := svc.GenerateText(context.Background(), content.Request{Model: "llama", Input: "hi"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["model"] == "" {
		t.Errorf("GenerateText(unsupported model) error = %v, want field error on model", err)
	}

	_, err = svc.GenerateImage(context.Background(), content.Request{})
	if !errors.As(err, &verr) || verr.Fields["description"] != domain.MsgRequired {
		t.Errorf("GenerateImage(empty) error = %v, want description is required", err)
	}
}
