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


// Package finsight assembles the role-gated document question-answering
// service: scoped retrieval over embedded document chunks, grounded
// generation, and an append-only audit log.
package finsight

import (
	"log/slog"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai"
	"github.com/finsolve/finsight/ai/openai"
	"github.com/finsolve/finsight/ingestion"
	"github.com/finsolve/finsight/query"
	"github.com/finsolve/finsight/server"
	"github.com/finsolve/finsight/storage"
	"github.com/finsolve/finsight/storage/badger"
	"github.com/finsolve/finsight/vectorstore"
	"github.com/finsolve/finsight/vectorstore/chroma"
	"github.com/finsolve/finsight/vectorstore/memory"
)

// App holds the assembled service components.
type App struct {
	backend  *badger.Backend
	chunks   storage.ChunkRegistry
	chatLog  storage.ChatLog
	registry *access.Registry
	provider ai.Provider
	store    vectorstore.Store
	aiConfig *ai.Config
	logger   *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig   *ai.Config
	chromaURL  string
	collection string
	seedFile   string
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithChroma stores vectors in a Chroma server instead of in process.
func WithChroma(url, collection string) AppOption {
	return func(o *appOptions) {
		o.chromaURL = url
		o.collection = collection
	}
}

// WithSeedFile loads roles and users from a YAML seed file at startup.
func WithSeedFile(path string) AppOption {
	return func(o *appOptions) {
		o.seedFile = path
	}
}

// NewApp opens the metadata store at filePath and assembles the service.
func NewApp(filePath string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	chunks := badger.NewChunkRegistry(backend)

	chatLog, err := badger.NewChatLog(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	registry := access.NewRegistry()
	if options.seedFile != "" {
		seed, err := access.LoadSeedFile(options.seedFile)
		if err != nil {
			chatLog.Close()
			backend.Close()
			return nil, err
		}
		if err := registry.Apply(seed); err != nil {
			chatLog.Close()
			backend.Close()
			return nil, err
		}
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		chatLog.Close()
		backend.Close()
		return nil, err
	}

	var store vectorstore.Store
	if options.chromaURL != "" {
		store, err = chroma.NewStore(options.chromaURL, options.collection, provider.Embedder())
		if err != nil {
			provider.Close()
			chatLog.Close()
			backend.Close()
			return nil, err
		}
	} else {
		store = memory.NewStore(provider.Embedder())
	}

	return &App{
		backend:  backend,
		chunks:   chunks,
		chatLog:  chatLog,
		registry: registry,
		provider: provider,
		store:    store,
		aiConfig: options.aiConfig,
		logger:   slog.Default(),
	}, nil
}

// Close releases all resources in reverse dependency order.
func (a *App) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing vector store", "err", err)
	}

	if err := a.chatLog.Close(); err != nil {
		a.logger.Error("error closing chat log", "err", err)
		return err
	}
	if err := a.chunks.Close(); err != nil {
		a.logger.Error("error closing chunk registry", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Registry returns the access registry.
func (a *App) Registry() *access.Registry {
	return a.registry
}

// ChunkRegistry returns the chunk provenance store.
func (a *App) ChunkRegistry() storage.ChunkRegistry {
	return a.chunks
}

// ChatLog returns the audit log.
func (a *App) ChatLog() storage.ChatLog {
	return a.chatLog
}

// VectorStore returns the similarity-search store.
func (a *App) VectorStore() vectorstore.Store {
	return a.store
}

// NewIngestionPipeline creates an ingestion pipeline over the app's stores.
func (a *App) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.chunks, a.store, opts...)
}

// NewQueryEngine creates a query engine over the app's stores. The AI
// config's timeout bounds generation unless overridden by opts.
func (a *App) NewQueryEngine(opts ...query.Option) (*query.Engine, error) {
	opts = append([]query.Option{query.WithTimeout(a.aiConfig.Timeout)}, opts...)
	return query.NewEngine(a.registry, a.store, a.provider.Generator(), a.chatLog, opts...)
}

// NewServer creates the HTTP server with a fresh pipeline and engine.
func (a *App) NewServer() (*server.Server, error) {
	engine, err := a.NewQueryEngine()
	if err != nil {
		return nil, err
	}
	pipeline, err := a.NewIngestionPipeline()
	if err != nil {
		return nil, err
	}
	return server.New(a.registry, engine, pipeline), nil
}
