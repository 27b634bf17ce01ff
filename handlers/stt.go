package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"meditrip/config"
	"meditrip/utils"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	maxAudioFileSize = 5 * 1024 * 1024 // 5MB
	allowedAudioExt  = ".wav"
)

func convertAudio(inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// TranscribeConsultationHandler converts an uploaded consultation recording
// to text via Google Cloud Speech, so patients can dictate symptom notes in
// their own language.
// POST /api/voice/transcribe
func (h *HandlerBundle) TranscribeConsultationHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "zh-CN")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != allowedAudioExt {
		utils.JSONError(c, http.StatusBadRequest, "Invalid file type",
			fmt.Sprintf("expected %s, got %s", allowedAudioExt, ext))
		return
	}

	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create temp file", err.Error())
		return
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	if _, err := io.Copy(tempInput, io.LimitReader(file, maxAudioFileSize)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save audio file", err.Error())
		return
	}

	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create output temp file", err.Error())
		return
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Audio conversion failed", err.Error())
		return
	}

	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read converted audio", err.Error())
		return
	}

	ctx := c.Request.Context()
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to initialize speech client", err.Error())
		return
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Speech recognition failed", err.Error())
		return
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transcription": strings.TrimSpace(transcript.String()),
	})
}
