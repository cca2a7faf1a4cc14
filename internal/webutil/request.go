package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go_5_quiz_keep/internal/model"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 5 << 20 // CSVアップロードを考慮して5MB

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが必要です", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// IntQuery はクエリパラメータを整数として読み取ります。
// names のうち最初に値があるものを使い、どれもなければ def を返します。範囲外は ErrInvalidInput
func IntQuery(r *http.Request, def, min, max int, names ...string) (int, error) {
	for _, name := range names {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			return 0, model.NewAppError(
				"INVALID_QUERY",
				fmt.Sprintf("%sは%dから%dの整数で指定してください", name, min, max),
				name,
				model.ErrInvalidInput,
			)
		}
		return n, nil
	}
	return def, nil
}

// IntURLParam はパスパラメータを正の整数として読み取ります
func IntURLParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, model.NewAppError("INVALID_PATH_PARAM", fmt.Sprintf("%sが不正です", name), name, model.ErrInvalidInput)
	}
	return n, nil
}
