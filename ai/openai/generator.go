// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/core"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
// Decoding parameters are fixed at construction; there is no streaming and
// no cap on output length.
type Generator struct {
	client            llms.Model
	temperature       float64
	topP              float64
	repetitionPenalty float64
	logger            *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken("none"),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:            client,
		temperature:       config.Temperature,
		topP:              config.TopP,
		repetitionPenalty: config.RepetitionPenalty,
		logger:            slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate produces a completion for the prompt with the fixed decoding
// configuration.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("generating completion", "promptLength", len(prompt))

	completion, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithTopP(g.topP),
		llms.WithRepetitionPenalty(g.repetitionPenalty),
	)
	if err != nil {
		g.logger.Error("failed to generate completion", "err", err)
		return "", mapUpstreamError(err)
	}

	return completion, nil
}

// mapUpstreamError folds transport and deadline failures into the shared
// error taxonomy.
func mapUpstreamError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", core.ErrDeadlineExceeded, err)
	}
	return fmt.Errorf("%w: %v", core.ErrUpstreamService, err)
}
