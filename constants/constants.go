package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("CHART_OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("CHART_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

const ChartVersion = "1.6.0"

// every strum line is a 4 key lane set
const KeyCount = 4

// notes quantized into the last EndMarginMs of a song are unplayable
const EndMarginMs = 500

// a note closer than MinGapRatio grid intervals to the previous kept note is dropped
const MinGapRatio = 0.8

const DefaultNotesPerTurn = 16

const DefaultScrollSpeed = 1.6
