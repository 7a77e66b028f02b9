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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/storage"
	"github.com/finsolve/finsight/vectorstore"
)

// Pipeline orchestrates document loading, chunking, and indexing.
// Directory ingestion processes files concurrently through a worker pool.
type Pipeline struct {
	registry     storage.ChunkRegistry
	store        vectorstore.Store
	pool         *ants.Pool
	splitter     textsplitter.RecursiveCharacter
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for directory ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunking sets the chunk size and overlap used by the splitter.
// Defaults are DefaultChunkSize and DefaultChunkOverlap.
func WithChunking(size, overlap int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("chunk size must be positive, got %d", size)
		}
		if overlap < 0 || overlap >= size {
			return fmt.Errorf("chunk overlap must be in [0, size), got %d", overlap)
		}
		p.chunkSize = size
		p.chunkOverlap = overlap
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(registry storage.ChunkRegistry, store vectorstore.Store, opts ...Option) (*Pipeline, error) {
	if registry == nil {
		return nil, ErrChunkRegistryRequired
	}
	if store == nil {
		return nil, ErrVectorStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		registry:     registry,
		store:        store,
		pool:         pool,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
		logger:       slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.splitter = newSplitter(p.chunkSize, p.chunkOverlap)

	return p, nil
}

// IngestFile loads, chunks, and indexes a single document under the given
// department's role scope. It returns the number of chunks produced.
// Re-ingesting the same file adds new chunks with fresh IDs.
func (p *Pipeline) IngestFile(ctx context.Context, path, department string) (int, error) {
	return p.ingest(ctx, path, filepath.Base(path), path, department)
}

// IngestUpload indexes an uploaded document. The content is staged in a
// temporary file for loading; provenance records carry the original file
// name, not the staging path.
func (p *Pipeline) IngestUpload(ctx context.Context, r io.Reader, fileName, department string) (int, error) {
	dir, err := os.MkdirTemp("", "finsight-upload-")
	if err != nil {
		return 0, fmt.Errorf("staging upload: %w", err)
	}
	defer os.RemoveAll(dir)

	staged := filepath.Join(dir, filepath.Base(fileName))
	f, err := os.Create(staged)
	if err != nil {
		return 0, fmt.Errorf("staging upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return 0, fmt.Errorf("staging upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("staging upload: %w", err)
	}

	return p.ingest(ctx, staged, filepath.Base(fileName), filepath.Base(fileName), department)
}

func (p *Pipeline) ingest(ctx context.Context, path, fileName, source, department string) (int, error) {
	if department == "" {
		return 0, ErrDepartmentRequired
	}
	roleScope := strings.ToLower(department)

	docs, err := loadDocument(ctx, path)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	var chunks []core.Chunk
	for _, doc := range docs {
		pieces, err := p.splitter.SplitText(doc.PageContent)
		if err != nil {
			return 0, fmt.Errorf("splitting %s: %w", path, err)
		}
		for _, text := range pieces {
			if strings.TrimSpace(text) == "" {
				continue
			}
			chunks = append(chunks, core.Chunk{
				ChunkRecord: core.ChunkRecord{
					ChunkID:    core.NewChunkID(),
					FileName:   fileName,
					RoleScope:  roleScope,
					Department: roleScope,
					Source:     source,
					CreatedAt:  now,
				},
				Text: text,
			})
		}
	}

	// A document whose text splits to nothing is a successful no-op, not an
	// error; the caller reports a zero chunk count.
	if len(chunks) == 0 {
		p.logger.Info("ingested file", "file", fileName, "department", roleScope, "chunks", 0)
		return 0, nil
	}

	if err := p.store.AddChunks(ctx, chunks); err != nil {
		return 0, err
	}

	// Provenance goes to the registry only after the vector store accepted
	// the chunks, so the registry never references unindexed chunks.
	for _, chunk := range chunks {
		record := chunk.ChunkRecord
		if err := p.registry.UpsertChunk(ctx, &record); err != nil {
			return 0, err
		}
	}

	p.logger.Info("ingested file", "file", fileName, "department", roleScope, "chunks", len(chunks))
	return len(chunks), nil
}

// FileFailure records one file that could not be ingested during a
// directory walk.
type FileFailure struct {
	Path string
	Err  error
}

// Report summarizes a directory ingestion run.
type Report struct {
	Files    int
	Chunks   int
	Failures []FileFailure
}

// IngestDir walks the immediate subdirectories of root, treating each
// subdirectory name as a department, and ingests every supported file
// found beneath it. Files are processed concurrently; a file that fails
// to load is recorded in the report and skipped rather than aborting the
// run.
func (p *Pipeline) IngestDir(ctx context.Context, root string) (*Report, error) {
	departments, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	type task struct {
		path       string
		department string
	}

	var tasks []task
	for _, entry := range departments {
		if !entry.IsDir() {
			continue
		}
		department := entry.Name()
		deptRoot := filepath.Join(root, department)

		walkErr := filepath.WalkDir(deptRoot, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !IsSupported(path) {
				return nil
			}
			tasks = append(tasks, task{path: path, department: department})
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walking %s: %w", deptRoot, walkErr)
		}
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report Report
	)

	for _, tk := range tasks {
		tk := tk
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			count, err := p.IngestFile(ctx, tk.path, tk.department)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("skipping file", "file", tk.path, "err", err)
				report.Failures = append(report.Failures, FileFailure{Path: tk.path, Err: err})
				return
			}
			report.Files++
			report.Chunks += count
		})
		if submitErr != nil {
			wg.Done()
			// Already-submitted tasks still hold references to the report;
			// let them drain before returning.
			wg.Wait()
			return nil, submitErr
		}
	}

	wg.Wait()

	p.logger.Info("directory ingestion complete",
		"root", root, "files", report.Files, "chunks", report.Chunks, "failures", len(report.Failures))
	return &report, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
