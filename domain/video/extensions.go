package video

import "strings"

// Extensions is the closed list of recognized video file suffixes.
// Matching is case-sensitive, so ".MP4" is not recognized.
var Extensions = []string{
	".webm", ".mp4", ".avi", ".mkv", ".mov", ".flv", ".wmv", ".mpeg", ".mpg", ".m4v", ".3gp", ".3g2",
	".mxf", ".ogv", ".ts", ".vob", ".mts", ".m2ts", ".divx", ".f4v", ".rm", ".rmvb", ".asf", ".amv",
	".svi", ".m2v", ".mpe", ".mpv", ".m1v", ".m2p", ".m2t", ".tod", ".vro", ".mvi", ".qt", ".yuv",
	".bik", ".drc", ".fli", ".flc", ".f4p", ".f4a", ".f4b",
}

// IsVideoFile returns true if name ends with any of the given extensions
func IsVideoFile(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
