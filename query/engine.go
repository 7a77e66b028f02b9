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


package query

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/storage"
	"github.com/finsolve/finsight/vectorstore"
)

const (
	// DefaultTopK is the number of chunks retrieved per query.
	DefaultTopK = 4

	// DefaultTimeout bounds a single generation call.
	DefaultTimeout = 120 * time.Second
)

// Engine answers questions over the scoped document corpus.
type Engine struct {
	registry  *access.Registry
	store     vectorstore.Store
	generator ai.Generator
	chatLog   storage.ChatLog
	topK      int
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithTopK sets the number of chunks retrieved per query.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(e *Engine) error {
		if k < 1 {
			return vectorstore.ErrInvalidK
		}
		e.topK = k
		return nil
	}
}

// WithTimeout bounds each generation call.
// Default is DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Engine) error {
		if timeout > 0 {
			e.timeout = timeout
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a query engine.
func NewEngine(
	registry *access.Registry,
	store vectorstore.Store,
	generator ai.Generator,
	chatLog storage.ChatLog,
	opts ...Option,
) (*Engine, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if store == nil {
		return nil, ErrVectorStoreRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if chatLog == nil {
		return nil, ErrChatLogRequired
	}

	e := &Engine{
		registry:  registry,
		store:     store,
		generator: generator,
		chatLog:   chatLog,
		topK:      DefaultTopK,
		timeout:   DefaultTimeout,
		logger:    slog.Default().With("component", "query-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Ask answers a question for the given user. Retrieval is scoped by the
// user's role, the model sees only retrieved text, and the exchange is
// appended to the audit log before the answer is returned.
func (e *Engine) Ask(ctx context.Context, user *core.User, question string) (*core.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuery
	}

	filter := e.registry.ScopeFor(user.RoleName)

	// One deadline covers the whole model path: the query embedding inside
	// Search as well as generation.
	modelCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	chunks, err := e.store.Search(modelCtx, question, e.topK, filter)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return e.answerNoEvidence(ctx, user, question)
	}

	prompt := buildPrompt(user.RoleName, question, chunks)

	response, err := e.generator.Generate(modelCtx, prompt)
	if err != nil {
		return nil, err
	}
	response = strings.TrimSpace(response)

	chunkIDs := make([]string, len(chunks))
	sources := make([]string, len(chunks))
	for i, chunk := range chunks {
		chunkIDs[i] = chunk.Chunk.ChunkID
		sources[i] = chunk.Chunk.Source
	}

	if err := e.audit(ctx, user, question, chunkIDs, response); err != nil {
		return nil, err
	}

	e.logger.Info("answered query",
		"user", user.Username, "role", user.RoleName, "chunks", len(chunks))

	return &core.Answer{
		Username: user.Username,
		Role:     user.RoleName,
		Query:    question,
		Response: response,
		Sources:  sources,
	}, nil
}

// answerNoEvidence handles the empty-retrieval case. No model call is
// made, but the exchange is still audited.
func (e *Engine) answerNoEvidence(ctx context.Context, user *core.User, question string) (*core.Answer, error) {
	if err := e.audit(ctx, user, question, nil, NoEvidenceMessage); err != nil {
		return nil, err
	}

	e.logger.Info("no evidence for query", "user", user.Username, "role", user.RoleName)

	return &core.Answer{
		Username: user.Username,
		Role:     user.RoleName,
		Query:    question,
		Response: NoEvidenceMessage,
		Sources:  []string{},
	}, nil
}

func (e *Engine) audit(ctx context.Context, user *core.User, question string, chunkIDs []string, answer string) error {
	_, err := e.chatLog.AppendEntry(ctx, &core.ChatLogEntry{
		Username:      user.Username,
		Role:          user.RoleName,
		Query:         question,
		ChunkIDs:      chunkIDs,
		AnswerPreview: core.Preview(answer),
	})
	return err
}
