package api

import (
	"bytes"
	"fmt"
	"os/exec"
)

// GenerarMiniatura extrae el primer fotograma del video como PNG usando ffmpeg.
func GenerarMiniatura(rutaVideo, rutaMiniatura string) error {
	args := []string{
		"-y",
		"-i", rutaVideo,
		"-vframes", "1",
		rutaMiniatura,
	}
	cmd := exec.Command("ffmpeg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %v: %s", err, stderr.String())
	}
	return nil
}
