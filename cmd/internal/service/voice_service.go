package service

import (
	"sathi/cmd/internal/contract"
	"sathi/cmd/internal/utils"
	"sathi/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const stubTranscription = "This is a stubbed transcription."

// DefaultVoiceService stubs both conversions until a real speech
// provider is wired in.
type DefaultVoiceService struct {
	Validate *validator.Validate
}

func NewVoiceService(validate *validator.Validate) *DefaultVoiceService {
	return &DefaultVoiceService{Validate: validate}
}

func (s *DefaultVoiceService) SpeechToText(req *contract.SpeechToTextRequest) (*contract.TranscriptionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	return &contract.TranscriptionResponse{Transcription: stubTranscription}, nil
}

func (s *DefaultVoiceService) TextToSpeech(req *contract.TextToSpeechRequest) (*contract.AudioResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Language == "" {
		req.Language = "en"
	}

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	return &contract.AudioResponse{
		AudioURL: "https://example.com/audio/" + uuid.NewString() + ".mp3",
	}, nil
}
