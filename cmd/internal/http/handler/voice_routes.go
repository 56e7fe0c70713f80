package handler

import (
	"net/http"

	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type VoiceService interface {
	SpeechToText(req *contract.SpeechToTextRequest) (*contract.TranscriptionResponse, apierror.ErrorResponse)
	TextToSpeech(req *contract.TextToSpeechRequest) (*contract.AudioResponse, apierror.ErrorResponse)
}

type DefaultVoiceRoute struct {
	VoiceService VoiceService
}

func NewVoiceDefault(voiceService VoiceService) *DefaultVoiceRoute {
	return &DefaultVoiceRoute{VoiceService: voiceService}
}

func (r *DefaultVoiceRoute) SpeechToText(c echo.Context) error {
	var req contract.SpeechToTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.VoiceService.SpeechToText(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *DefaultVoiceRoute) TextToSpeech(c echo.Context) error {
	var req contract.TextToSpeechRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := r.VoiceService.TextToSpeech(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
