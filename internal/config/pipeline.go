package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvPipelineAnnotateConcurrency = "CANTOR_PIPELINE_ANNOTATE_CONCURRENCY"
	EnvPipelineDivergenceThreshold = "CANTOR_PIPELINE_DIVERGENCE_THRESHOLD"
	EnvPipelineTrainRatio          = "CANTOR_PIPELINE_TRAIN_RATIO"
	EnvPipelineSeed                = "CANTOR_PIPELINE_SEED"
	EnvPipelineDefaultFormat       = "CANTOR_PIPELINE_DEFAULT_FORMAT"
)

// PipelineConfig holds tuning parameters for the annotation and export pipeline.
type PipelineConfig struct {
	AnnotateConcurrency int     `toml:"annotate_concurrency"`
	DivergenceThreshold float64 `toml:"divergence_threshold"`
	TrainRatio          float64 `toml:"train_ratio"`
	Seed                int64   `toml:"seed"`
	DefaultFormat       string  `toml:"default_format"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.AnnotateConcurrency != 0 {
		c.AnnotateConcurrency = overlay.AnnotateConcurrency
	}
	if overlay.DivergenceThreshold != 0 {
		c.DivergenceThreshold = overlay.DivergenceThreshold
	}
	if overlay.TrainRatio != 0 {
		c.TrainRatio = overlay.TrainRatio
	}
	if overlay.Seed != 0 {
		c.Seed = overlay.Seed
	}
	if overlay.DefaultFormat != "" {
		c.DefaultFormat = overlay.DefaultFormat
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.AnnotateConcurrency <= 0 {
		c.AnnotateConcurrency = 4
	}
	if c.DivergenceThreshold <= 0 {
		c.DivergenceThreshold = 0.5
	}
	if c.TrainRatio <= 0 {
		c.TrainRatio = 0.9
	}
	if c.Seed == 0 {
		c.Seed = 1845
	}
	if c.DefaultFormat == "" {
		c.DefaultFormat = "llama-chat"
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineAnnotateConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.AnnotateConcurrency = n
		}
	}
	if v := os.Getenv(EnvPipelineDivergenceThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DivergenceThreshold = f
		}
	}
	if v := os.Getenv(EnvPipelineTrainRatio); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.TrainRatio = f
		}
	}
	if v := os.Getenv(EnvPipelineSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv(EnvPipelineDefaultFormat); v != "" {
		c.DefaultFormat = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.AnnotateConcurrency < 1 {
		return fmt.Errorf("annotate_concurrency must be positive")
	}
	if c.DivergenceThreshold <= 0 || c.DivergenceThreshold > 1 {
		return fmt.Errorf("divergence_threshold must be in (0, 1]")
	}
	if c.TrainRatio <= 0 || c.TrainRatio >= 1 {
		return fmt.Errorf("train_ratio must be in (0, 1)")
	}
	return nil
}
