package contract

type SpeechToTextRequest struct {
	AudioURL string `json:"audio_url" validate:"required,url"`
}

type TextToSpeechRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=5000"`
	Language string `json:"language" validate:"omitempty,min=2,max=10"`
}

type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}

type AudioResponse struct {
	AudioURL string `json:"audio_url"`
}
