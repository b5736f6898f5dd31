package audio

import (
	"fmt"
	"strings"
)

// Format is an audio output format offered to the operator.
// Its string value doubles as the output file extension.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatOGG  Format = "ogg"
	FormatWAV  Format = "wav"
	FormatFLAC Format = "flac"
	FormatAAC  Format = "aac"
	FormatM4A  Format = "m4a"
	FormatWMA  Format = "wma"
	FormatOpus Format = "opus"
	FormatAIFF Format = "aiff"
	FormatAC3  Format = "ac3"
	FormatEAC3 Format = "eac3"
	FormatMP2  Format = "mp2"
)

// formats lists the offered formats in prompt order
var formats = []Format{
	FormatMP3, FormatOGG, FormatWAV, FormatFLAC, FormatAAC, FormatM4A,
	FormatWMA, FormatOpus, FormatAIFF, FormatAC3, FormatEAC3, FormatMP2,
}

// encoders maps each offered format to its ffmpeg encoder identifier
var encoders = map[Format]string{
	FormatMP3:  "libmp3lame",
	FormatOGG:  "libvorbis",
	FormatWAV:  "pcm_s16le",
	FormatFLAC: "flac",
	FormatAAC:  "aac",
	FormatM4A:  "aac",
	FormatWMA:  "wmav2",
	FormatOpus: "libopus",
	FormatAIFF: "pcm_s16be",
	FormatAC3:  "ac3",
	FormatEAC3: "eac3",
	FormatMP2:  "mp2",
}

// experimentalEncoders need "-strict -2" before ffmpeg will use them
var experimentalEncoders = map[string]bool{
	"libfdk_aac": true,
	"libshine":   true,
	"libtwolame": true,
}

// Formats returns the offered formats in display order
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Labels returns the format labels in display order, for prompts
func Labels() []string {
	labels := make([]string, len(formats))
	for i, f := range formats {
		labels[i] = string(f)
	}
	return labels
}

// ParseFormat resolves a format label (case-insensitive, optional leading dot)
func ParseFormat(label string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(label), ".")))
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("%w %q: choose one of %s", ErrUnknownFormat, label, strings.Join(Labels(), ", "))
	}
	return f, nil
}

// Encoder returns the ffmpeg encoder identifier for the format
func (f Format) Encoder() string {
	return encoders[f]
}

// Extension returns the output file extension without the leading dot
func (f Format) Extension() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}

// RequiresStrict reports whether ffmpeg needs the experimental compatibility
// flag to use the given encoder
func RequiresStrict(encoderID string) bool {
	return experimentalEncoders[encoderID]
}
