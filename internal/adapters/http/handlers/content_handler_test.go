package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
	"github.com/jsamuelsen11/fleet-dispatch/mocks"
)

func newContentHandler(t *testing.T) (*handlers.ContentHandler, *mocks.MockContentService) {
	t.Helper()
	svc := mocks.NewMockContentService(t)
	return handlers.NewContentHandler(svc), svc
}

func TestText_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().GenerateText(mock.Anything, content.Request{Model: "claude", Input: "route summary"}).
		Return(&ports.Generation{Model: "claude", Result: "Claude generated text based on: route summary"}, nil)

	body := jsonBody(t, dto.TextRequest{Model: "claude", Prompt: "route summary"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/text", body)
	h.Text(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TextResponse](t, rec)
	if resp.Model != "claude" || resp.Result == "" {
		t.Errorf("response = %+v", resp)
	}
}

func TestText_MissingPrompt(t *testing.T) {
	t.Parallel()
	h, _ := newContentHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/text", jsonBody(t, dto.TextRequest{Model: "gpt"}))
	h.Text(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestText_UnsupportedModel(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().GenerateText(mock.Anything, mock.Anything).
		Return(nil, domain.NewFieldError("model", `no content model registered for "llama"`))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/text", jsonBody(t, dto.TextRequest{Model: "llama", Prompt: "hi"}))
	h.Text(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestImage_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().GenerateImage(mock.Anything, content.Request{Input: "a red truck"}).
		Return(&ports.Generation{Model: "gpt", Result: "https://images.local/gpt?prompt=a+red+truck"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/image", jsonBody(t, dto.ImageRequest{Description: "a red truck"}))
	h.Image(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["image_url"] != "https://images.local/gpt?prompt=a+red+truck" {
		t.Errorf("image_url = %q", resp["image_url"])
	}
}

func TestImage_MissingDescription(t *testing.T) {
	t.Parallel()
	h, _ := newContentHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/image", jsonBody(t, map[string]string{}))
	h.Image(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
