package core

import (
	"context"
	"io"

	"github.com/agenthands/mdm/internal/config"
	"github.com/agenthands/mdm/internal/core/cleansing"
	"github.com/agenthands/mdm/internal/core/dedupe"
	"github.com/agenthands/mdm/internal/core/model"
	"github.com/agenthands/mdm/internal/core/registry"
	"github.com/agenthands/mdm/internal/llm"
)

// MDM wires the data-quality flows and the in-memory registry behind one value
// shared by the HTTP server and the CLI.
type MDM struct {
	LLM      llm.LLMClient
	Cleanser *cleansing.Cleanser
	Detector *dedupe.Detector
	Registry *registry.Registry
}

func NewMDM(llmClient llm.LLMClient, cfg *config.Config) (*MDM, error) {
	cleanser, err := cleansing.NewCleanser(llmClient, cfg.Prompts.Cleansing)
	if err != nil {
		return nil, err
	}
	detector, err := dedupe.NewDetector(llmClient, cfg.Prompts.Duplicates, cfg.Duplicates.EnforcePolicy)
	if err != nil {
		return nil, err
	}

	return &MDM{
		LLM:      llmClient,
		Cleanser: cleanser,
		Detector: detector,
		Registry: registry.NewSeeded(),
	}, nil
}

func (m *MDM) Cleanse(ctx context.Context, req model.CleansingRequest) (model.CleansingResult, error) {
	return m.Cleanser.Cleanse(ctx, req)
}

func (m *MDM) DetectDuplicates(ctx context.Context, req model.DuplicateCheckRequest) (model.DuplicateCheckResult, error) {
	return m.Detector.Detect(ctx, req)
}

// Close releases the model client when it holds resources.
func (m *MDM) Close() error {
	if c, ok := m.LLM.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
