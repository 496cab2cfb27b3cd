package config

import "os"

// Config carries process-level settings for the inference engines, read
// from the environment after LoadEnv.
type Config struct {
	// ArtifactBackend selects where trained models persist: "fs" or
	// "dynamodb".
	ArtifactBackend string
	ArtifactDir     string
	ArtifactKey     string
	ArtifactTable   string

	// ClassifierBackend selects the text-classification capability:
	// "vader", "hugot", "remote", "openai" or "none" (keyword fallback
	// only).
	ClassifierBackend string
	RemoteEndpoint    string
	HugotModel        string
	HugotModelDir     string

	// ValkeyEnabled turns on sentiment result memoization when a Valkey
	// address is configured.
	ValkeyEnabled bool
}

func FromEnv() Config {
	cfg := Config{
		ArtifactBackend:   "fs",
		ArtifactDir:       "./artifacts",
		ClassifierBackend: "vader",
	}

	if v := os.Getenv("ARTIFACT_BACKEND"); v != "" {
		cfg.ArtifactBackend = v
	}
	if v := os.Getenv("ARTIFACT_DIR"); v != "" {
		cfg.ArtifactDir = v
	}
	cfg.ArtifactKey = os.Getenv("ARTIFACT_KEY")
	cfg.ArtifactTable = os.Getenv("ARTIFACT_TABLE")

	if v := os.Getenv("CLASSIFIER_BACKEND"); v != "" {
		cfg.ClassifierBackend = v
	}
	cfg.RemoteEndpoint = os.Getenv("CLASSIFIER_ENDPOINT")
	cfg.HugotModel = os.Getenv("HUGOT_MODEL")
	cfg.HugotModelDir = os.Getenv("HUGOT_MODEL_DIR")

	cfg.ValkeyEnabled = os.Getenv("VALKEY_INIT_ADDRESS") != ""

	return cfg
}
