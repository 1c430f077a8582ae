package constants

import (
	"os"
	"time"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// GetMetadataTable returns "" when metadata enrichment is disabled.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

const DefaultBPM = 120

const DefaultTimeSignature = 4

const DefaultMeasuresPerRow = 4

// the most shift+padding cells one grid will fabricate; counts beyond
// this (bogus first-beat timestamps, absurd overrides) clamp here
const MaxSyntheticCells = 10000

// widest meter a payload can ask for
const MaxTimeSignature = 64

// how long the last cell stays highlighted after its timestamp
const HighlightWindowSec = 2.0

// ~10 Hz, plenty for visual highlighting
const PollInterval = 100 * time.Millisecond

const RebuildDebounce = 100 * time.Millisecond

// DynamoDB BatchGetItem page limit we stay under
const MetadataBatchSize = 10
