package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/ai/mock"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/ingestion"
	"github.com/finsolve/finsight/query"
	"github.com/finsolve/finsight/storage"
	badgerstore "github.com/finsolve/finsight/storage/badger"
	"github.com/finsolve/finsight/vectorstore/memory"
)

type serverEnv struct {
	server   *Server
	registry *access.Registry
	chunks   storage.ChunkRegistry
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()

	chunks, chatLog, backend, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() {
		chatLog.Close()
		backend.Close()
	})

	registry := access.NewRegistry()
	registry.AddRole(core.Role{Name: "finance"})
	registry.AddRole(core.Role{Name: "c-levelexecutives", Privileged: true})
	require.NoError(t, registry.CreateUser("alice", "alicepw", "finance"))
	require.NoError(t, registry.CreateUser("bob", "bobpw", access.BaselineRole))
	require.NoError(t, registry.CreateUser("ceo", "ceopw", "c-levelexecutives"))

	store := memory.NewStore(mock.NewMockEmbedder())
	require.NoError(t, store.AddChunks(context.Background(), []core.Chunk{
		{
			ChunkRecord: core.ChunkRecord{
				ChunkID: "fin-1", RoleScope: "finance",
				FileName: "revenue.md", Source: "data/finance/revenue.md",
			},
			Text: "Quarterly revenue grew twelve percent.",
		},
		{
			ChunkRecord: core.ChunkRecord{
				ChunkID: "gen-1", RoleScope: "general",
				FileName: "holidays.md", Source: "data/general/holidays.md",
			},
			Text: "Company holiday calendar for the year.",
		},
	}))

	engine, err := query.NewEngine(registry, store, mock.NewMockGenerator(), chatLog)
	require.NoError(t, err)

	pipeline, err := ingestion.NewPipeline(chunks, store)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return &serverEnv{
		server:   New(registry, engine, pipeline),
		registry: registry,
		chunks:   chunks,
	}
}

func (env *serverEnv) do(t *testing.T, method, path string, body *bytes.Buffer, contentType, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if username != "" {
		req.SetBasicAuth(username, password)
	}

	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer_Healthz(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/healthz", nil, "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_LoginRequiresAuth(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/login", nil, "", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/login", nil, "", "alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Login(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/login", nil, "", "alice", "alicepw")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[LoginResponse](t, rec)
	assert.Equal(t, "Welcome alice!", resp.Message)
	assert.Equal(t, "finance", resp.Role)
}

func TestServer_ChatScopedToRole(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, ChatRequest{Message: "How did revenue do?"})
	rec := env.do(t, http.MethodPost, "/chat", body, echo.MIMEApplicationJSON, "alice", "alicepw")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ChatResponse](t, rec)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "finance", resp.Role)
	assert.Equal(t, []string{"data/finance/revenue.md"}, resp.Sources)
	assert.NotEmpty(t, resp.Response)
}

func TestServer_ChatBaselineGetsGeneralOnly(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, ChatRequest{Message: "When are the holidays?"})
	rec := env.do(t, http.MethodPost, "/chat", body, echo.MIMEApplicationJSON, "bob", "bobpw")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[ChatResponse](t, rec)
	assert.Equal(t, []string{"data/general/holidays.md"}, resp.Sources)
}

func TestServer_ChatEmptyMessage(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, ChatRequest{Message: "  "})
	rec := env.do(t, http.MethodPost, "/chat", body, echo.MIMEApplicationJSON, "alice", "alicepw")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartUpload(t *testing.T, department, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("department", department))
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestServer_UploadDocs(t *testing.T) {
	env := newServerEnv(t)

	body, contentType := multipartUpload(t, "Marketing", "campaign.txt", "The spring campaign doubled signups.")
	rec := env.do(t, http.MethodPost, "/upload-docs", body, contentType, "ceo", "ceopw")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[MessageResponse](t, rec)
	assert.Contains(t, resp.Message, "chunks to role 'Marketing'")

	records, err := env.chunks.ListChunks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "marketing", records[0].RoleScope)
	assert.Equal(t, "campaign.txt", records[0].FileName)
	assert.Equal(t, "campaign.txt", records[0].Source)
}

func TestServer_UploadDocsForbiddenForNonPrivileged(t *testing.T) {
	env := newServerEnv(t)

	body, contentType := multipartUpload(t, "finance", "doc.txt", "text")
	rec := env.do(t, http.MethodPost, "/upload-docs", body, contentType, "alice", "alicepw")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_UploadDocsUnsupportedType(t *testing.T) {
	env := newServerEnv(t)

	body, contentType := multipartUpload(t, "finance", "doc.docx", "binary")
	rec := env.do(t, http.MethodPost, "/upload-docs", body, contentType, "ceo", "ceopw")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Roles(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/roles", nil, "", "bob", "bobpw")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[RolesResponse](t, rec)
	assert.Contains(t, resp.Roles, "finance")
	assert.Contains(t, resp.Roles, access.BaselineRole)
	assert.True(t, sortedStrings(resp.Roles), "roles are sorted")
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

func TestServer_CreateUser(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, CreateUserRequest{Username: "dave", Password: "davepw", Role: "finance"})
	rec := env.do(t, http.MethodPost, "/create-user", body, echo.MIMEApplicationJSON, "ceo", "ceopw")
	require.Equal(t, http.StatusOK, rec.Code)

	// The new account can authenticate immediately.
	rec = env.do(t, http.MethodGet, "/login", nil, "", "dave", "davepw")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreateUserConflict(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, CreateUserRequest{Username: "alice", Password: "other", Role: "finance"})
	rec := env.do(t, http.MethodPost, "/create-user", body, echo.MIMEApplicationJSON, "ceo", "ceopw")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CreateUserForbiddenForNonPrivileged(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, CreateUserRequest{Username: "eve", Password: "evepw", Role: "finance"})
	rec := env.do(t, http.MethodPost, "/create-user", body, echo.MIMEApplicationJSON, "bob", "bobpw")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_CreateRole(t *testing.T) {
	env := newServerEnv(t)

	body := jsonBody(t, CreateRoleRequest{RoleName: "Legal"})
	rec := env.do(t, http.MethodPost, "/create-role", body, echo.MIMEApplicationJSON, "ceo", "ceopw")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/roles", nil, "", "ceo", "ceopw")
	resp := decode[RolesResponse](t, rec)
	assert.Contains(t, resp.Roles, "legal")
}
