package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBody(t *testing.T) {
	longCSV := strings.Repeat("a", maxLoggedFieldLen+10)

	t.Run("機密項目をマスクし、csv を切り詰める", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "user@example.com", "token": "abc", "csv": longCSV, "mode": "weak"})

		got, ok := formatBody(body).(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "[MASKED]", got["email"])
		assert.Equal(t, "[MASKED]", got["token"])
		assert.Equal(t, "weak", got["mode"])
		assert.True(t, strings.HasPrefix(got["csv"].(string), strings.Repeat("a", maxLoggedFieldLen)+"..."))
	})

	t.Run("日本語の csv は文字の途中で切らない", func(t *testing.T) {
		jaCSV := strings.Repeat("分", 100) // 300 bytes
		body, _ := json.Marshal(map[string]string{"csv": jaCSV})

		got, ok := formatBody(body).(map[string]interface{})
		require.True(t, ok)
		csv := got["csv"].(string)
		assert.True(t, utf8.ValidString(csv))
		assert.Equal(t, strings.Repeat("分", 85)+"... (300 bytes)", csv)
	})

	t.Run("空のボディ", func(t *testing.T) {
		assert.Equal(t, "", formatBody(nil))
	})

	t.Run("JSONでないボディはサイズのみ", func(t *testing.T) {
		assert.Equal(t, "[non-JSON body: 5 bytes]", formatBody([]byte("hello")))
	})
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{name: "上限以内はそのまま", s: "abc", n: 5, want: "abc"},
		{name: "ASCII", s: "abcdef", n: 4, want: "abcd"},
		{name: "境界ちょうど", s: "○×○", n: 5, want: "○×"},
		{name: "文字の途中なら手前で切る", s: "○×○", n: 4, want: "○"},
		{name: "先頭の文字より短い", s: "○", n: 2, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.s, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer xxx")
	h.Set("Content-Type", "application/json")

	got := formatHeaders(h)
	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "application/json", got["Content-Type"])
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 後続のハンドラはコンテキストのロガーを使う
		GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"問題が見つかりません"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/magic-link", strings.NewReader(`{"email":"user@example.com"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	out := buf.String()
	assert.Contains(t, out, `"msg":"inside handler"`)
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.NotContains(t, out, "user@example.com")
}
