package backend

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"strings"
	"testing"

	"flatacuties/core/storage/mocks"
	"flatacuties/feature/characters/models"
	"flatacuties/feature/characters/remote"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, cfg Config, images *mocks.Client) *fiber.App {
	t.Helper()
	repo := seededRepository(t)

	svc := NewService(repo, nil, "characters", cfg, zap.NewNop())
	if images != nil {
		svc = NewService(repo, images, "characters", cfg, zap.NewNop())
	}

	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandler_Read(t *testing.T) {
	app := setupApp(t, Config{}, nil)

	status, body := doJSON(t, app, fiber.MethodGet, "/characters", "")
	assert.Equal(t, fiber.StatusOK, status)
	var records []models.Character
	require.NoError(t, json.Unmarshal(body, &records))
	assert.Equal(t, seedCharacters, records)

	status, body = doJSON(t, app, fiber.MethodGet, "/characters/5", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":5,"name":"Ms. Zebra","image":"ms-zebra.png","votes":7}`, string(body))

	status, body = doJSON(t, app, fiber.MethodGet, "/characters/42", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{}`, string(body))

	status, _ = doJSON(t, app, fiber.MethodGet, "/characters/abc", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_Patch(t *testing.T) {
	app := setupApp(t, Config{}, nil)

	status, body := doJSON(t, app, fiber.MethodPatch, "/characters/2", `{"votes":4}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":2,"name":"Mx. Monkey","image":"mx-monkey.png","votes":4}`, string(body))

	// negative counts are clamped like every other vote value
	status, body = doJSON(t, app, fiber.MethodPatch, "/characters/2", `{"votes":-3}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":2,"name":"Mx. Monkey","image":"mx-monkey.png","votes":0}`, string(body))

	status, _ = doJSON(t, app, fiber.MethodPatch, "/characters/2", `{"name":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, fiber.MethodPatch, "/characters/42", `{"votes":1}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_Create(t *testing.T) {
	app := setupApp(t, Config{}, nil)

	status, body := doJSON(t, app, fiber.MethodPost, "/characters", `{"name":" Dr. Owl ","image":"owl.png","votes":0}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"id":6,"name":"Dr. Owl","image":"owl.png","votes":0}`, string(body))

	status, _ = doJSON(t, app, fiber.MethodPost, "/characters", `{"name":"","image":"owl.png"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, fiber.MethodPost, "/characters", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandler_ReadOnly(t *testing.T) {
	app := setupApp(t, Config{ReadOnly: true}, nil)

	status, _ := doJSON(t, app, fiber.MethodPatch, "/characters/1", `{"votes":9}`)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doJSON(t, app, fiber.MethodPost, "/characters", `{"name":"Dr. Owl","image":"owl.png"}`)
	assert.Equal(t, fiber.StatusForbidden, status)

	// reads still work and nothing changed
	status, body := doJSON(t, app, fiber.MethodGet, "/characters/1", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Mr. Cute","image":"mr-cute.png","votes":3}`, string(body))
}

func TestHandler_Images(t *testing.T) {
	t.Run("Stream", func(t *testing.T) {
		images := new(mocks.Client)
		images.On("StatObject", mock.Anything, "characters", "images/mr-cute.png", minio.StatObjectOptions{}).
			Return(minio.ObjectInfo{Key: "images/mr-cute.png", Size: 3, ContentType: "image/png"}, nil)
		images.On("GetObject", mock.Anything, "characters", "images/mr-cute.png", minio.GetObjectOptions{}).
			Return(io.NopCloser(strings.NewReader("png")), nil)
		app := setupApp(t, Config{ImagesEnabled: true, ImagesPrefix: "images"}, images)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/images/mr-cute.png", nil), 2000)
		require.NoError(t, err)
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.Equal(t, "png", string(data))
		images.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		images := new(mocks.Client)
		images.On("StatObject", mock.Anything, "characters", "images/ghost.png", minio.StatObjectOptions{}).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
		app := setupApp(t, Config{ImagesEnabled: true, ImagesPrefix: "images"}, images)

		status, _ := doJSON(t, app, fiber.MethodGet, "/images/ghost.png", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		images.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage Error", func(t *testing.T) {
		images := new(mocks.Client)
		images.On("StatObject", mock.Anything, "characters", "images/a.png", minio.StatObjectOptions{}).
			Return(minio.ObjectInfo{}, assert.AnError)
		app := setupApp(t, Config{ImagesEnabled: true, ImagesPrefix: "images"}, images)

		status, _ := doJSON(t, app, fiber.MethodGet, "/images/a.png", "")
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})

	t.Run("Disabled", func(t *testing.T) {
		app := setupApp(t, Config{}, nil)
		status, _ := doJSON(t, app, fiber.MethodGet, "/images/mr-cute.png", "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("Upload", func(t *testing.T) {
		images := new(mocks.Client)
		images.On("PutObject", mock.Anything, "characters", "images/owl.png", mock.Anything, int64(3),
			minio.PutObjectOptions{ContentType: "image/png"}).
			Return(minio.UploadInfo{Key: "images/owl.png"}, nil)
		app := setupApp(t, Config{ImagesEnabled: true, ImagesPrefix: "images"}, images)

		req := httptest.NewRequest(fiber.MethodPut, "/images/owl.png", strings.NewReader("png"))
		req.Header.Set("Content-Type", "image/png")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"key":"images/owl.png"}`, string(data))
		images.AssertExpectations(t)
	})

	t.Run("Upload Read Only", func(t *testing.T) {
		images := new(mocks.Client)
		app := setupApp(t, Config{ReadOnly: true, ImagesEnabled: true, ImagesPrefix: "images"}, images)

		req := httptest.NewRequest(fiber.MethodPut, "/images/owl.png", strings.NewReader("png"))
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

// serve runs app on a loopback port and returns its base URL.
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestRemoteClientAgainstBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("Writable", func(t *testing.T) {
		base := serve(t, setupApp(t, Config{}, nil))
		client := remote.NewClient(base, remote.Config{TimeoutSeconds: 5}, zap.NewNop())

		records, err := client.FetchAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, seedCharacters, records)

		rec, err := client.PersistVotes(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, rec.Votes)

		created, err := client.CreateRecord(ctx, models.Candidate{Name: "Dr. Owl", Image: "owl.png"})
		require.NoError(t, err)
		assert.True(t, created.Confirmed)
		assert.Equal(t, models.Character{ID: 6, Name: "Dr. Owl", Image: "owl.png", Votes: 0}, created.Character)

		_, err = client.FetchByID(ctx, 42)
		status, ok := remote.Status(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("Read Only", func(t *testing.T) {
		base := serve(t, setupApp(t, Config{ReadOnly: true}, nil))
		client := remote.NewClient(base, remote.Config{TimeoutSeconds: 5}, zap.NewNop())

		_, err := client.PersistVotes(ctx, 1, 4)
		var rejected *remote.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, fiber.StatusForbidden, rejected.Status)

		created, err := client.CreateRecord(ctx, models.Candidate{Name: "Dr. Owl", Image: "owl.png"})
		require.NoError(t, err)
		assert.False(t, created.Confirmed)
		assert.Equal(t, fiber.StatusForbidden, created.Status)
	})
}
